package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

type ExpenseInput struct {
	Title   string  `json:"title" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	StoreID *uint   `json:"store_id"`
}

func (h *ExpenseController) List(c *gin.Context) {
	var rows []models.Expense
	q := h.DB.Order("created_at DESC")
	if date := c.Query("date"); date != "" {
		q = q.Where("DATE(created_at) = ?", date)
	}
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list expenses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *ExpenseController) Create(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	var in ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if in.StoreID != nil {
		var cnt int64
		if err := h.DB.Model(&models.Store{}).Where("id = ?", *in.StoreID).Count(&cnt).Error; err != nil || cnt == 0 {
			utils.Error(c, http.StatusBadRequest, "store not found", nil)
			return
		}
	}
	row := models.Expense{
		Title:       in.Title,
		Amount:      in.Amount,
		StoreID:     in.StoreID,
		CreatedByID: uid,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not record expense", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}
