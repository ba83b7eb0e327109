package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type SaleController struct {
	DB *gorm.DB
}

func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{DB: db}
}

// GET /api/sales?date=YYYY-MM-DD&status=PAID
func (h *SaleController) List(c *gin.Context) {
	var rows []models.Sale
	q := h.DB.Preload("Attendant").Order("created_at DESC")
	if date := c.Query("date"); date != "" {
		q = q.Where("DATE(created_at) = ?", date)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Limit(200).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list sales", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/sales/:id
func (h *SaleController) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var sale models.Sale
	if err := h.DB.Preload("Items").Preload("Attendant").First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "sale not found", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not load sale", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sale})
}
