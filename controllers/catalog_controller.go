package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

// CatalogController covers the small reference tables: categories, stores
// and printers.
type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db}
}

// ---- categories ----

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

func (h *CatalogController) ListCategories(c *gin.Context) {
	var rows []models.Category
	if err := h.DB.Order("name ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *CatalogController) CreateCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	row := models.Category{Name: in.Name}
	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusConflict, "category already exists", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var used int64
	if err := h.DB.Model(&models.Item{}).Where("category_id = ?", id).Count(&used).Error; err == nil && used > 0 {
		utils.Error(c, http.StatusConflict, "category has items", nil)
		return
	}
	res := h.DB.Delete(&models.Category{}, id)
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "category not found", nil)
		return
	}
	utils.Success(c, "category deleted", nil)
}

// ---- stores ----

type StoreInput struct {
	Name      string `json:"name" binding:"required"`
	PrinterID *uint  `json:"printer_id"`
}

func (h *CatalogController) ListStores(c *gin.Context) {
	var rows []models.Store
	if err := h.DB.Preload("Printer").Order("name ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list stores", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *CatalogController) CreateStore(c *gin.Context) {
	var in StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if in.PrinterID != nil {
		var cnt int64
		if err := h.DB.Model(&models.Printer{}).Where("id = ?", *in.PrinterID).Count(&cnt).Error; err != nil || cnt == 0 {
			utils.Error(c, http.StatusBadRequest, "printer not found", nil)
			return
		}
	}
	row := models.Store{Name: in.Name, PrinterID: in.PrinterID}
	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusConflict, "store already exists", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *CatalogController) UpdateStore(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var in StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	res := h.DB.Model(&models.Store{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       in.Name,
		"printer_id": in.PrinterID,
	})
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update store", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "store not found", nil)
		return
	}
	utils.Success(c, "store updated", nil)
}

// ---- printers ----

type PrinterInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (h *CatalogController) ListPrinters(c *gin.Context) {
	var rows []models.Printer
	if err := h.DB.Order("id ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list printers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *CatalogController) CreatePrinter(c *gin.Context) {
	var in PrinterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	row := models.Printer{Name: in.Name, Address: in.Address}
	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusConflict, "printer already exists", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

func (h *CatalogController) UpdatePrinter(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var in PrinterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	res := h.DB.Model(&models.Printer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":    in.Name,
		"address": in.Address,
	})
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update printer", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "printer not found", nil)
		return
	}
	utils.Success(c, "printer updated", nil)
}

func (h *CatalogController) DeletePrinter(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var used int64
	if err := h.DB.Model(&models.Store{}).Where("printer_id = ?", id).Count(&used).Error; err == nil && used > 0 {
		utils.Error(c, http.StatusConflict, "printer is assigned to a store", nil)
		return
	}
	res := h.DB.Delete(&models.Printer{}, id)
	if res.Error != nil && !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		utils.Error(c, http.StatusInternalServerError, "could not delete printer", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "printer not found", nil)
		return
	}
	utils.Success(c, "printer deleted", nil)
}
