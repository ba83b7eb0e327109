package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

type TableInput struct {
	Number int `json:"number" binding:"required,gt=0"`
}

func (h *TableController) List(c *gin.Context) {
	var rows []models.Table
	q := h.DB.Order("number ASC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list tables", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *TableController) Create(c *gin.Context) {
	var in TableInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	row := models.Table{Number: in.Number, Status: models.TableAvailable}
	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusConflict, "table number already exists", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

// Delete only allows removing free tables; an occupied table carries an
// open order.
func (h *TableController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var table models.Table
	if err := h.DB.First(&table, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "table not found", nil)
		return
	}
	if table.Status == models.TableOccupied {
		utils.Error(c, http.StatusConflict, "table has an open order", nil)
		return
	}
	if err := h.DB.Delete(&models.Table{}, id).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete table", err)
		return
	}
	utils.Success(c, "table deleted", nil)
}
