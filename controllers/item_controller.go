package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

type ItemInput struct {
	Name       string  `json:"name" binding:"required"`
	Barcode    string  `json:"barcode" binding:"required"`
	StoreID    uint    `json:"store_id" binding:"required"`
	CategoryID uint    `json:"category_id" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Stock      int     `json:"stock" binding:"gte=0"`
}

func (h *ItemController) List(c *gin.Context) {
	var items []models.Item
	q := h.DB.Preload("Store").Preload("Category").Order("name ASC")
	if s := c.Query("q"); s != "" {
		like := "%" + s + "%"
		q = q.Where("name LIKE ? OR barcode LIKE ?", like, like)
	}
	if storeID := c.Query("store_id"); storeID != "" {
		q = q.Where("store_id = ?", storeID)
	}
	if err := q.Find(&items).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list items", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ItemController) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var item models.Item
	if err := h.DB.Preload("Store").Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "item not found", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not load item", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (h *ItemController) Create(c *gin.Context) {
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	var cnt int64
	if err := h.DB.Model(&models.Store{}).Where("id = ?", in.StoreID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "store not found", nil)
		return
	}
	if err := h.DB.Model(&models.Category{}).Where("id = ?", in.CategoryID).Count(&cnt).Error; err != nil || cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "category not found", nil)
		return
	}

	item := models.Item{
		Name:       in.Name,
		Barcode:    in.Barcode,
		StoreID:    in.StoreID,
		CategoryID: in.CategoryID,
		Price:      in.Price,
		Stock:      in.Stock,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		utils.Error(c, http.StatusConflict, "barcode already exists", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (h *ItemController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var in ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	res := h.DB.Model(&models.Item{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        in.Name,
		"barcode":     in.Barcode,
		"store_id":    in.StoreID,
		"category_id": in.CategoryID,
		"price":       in.Price,
	})
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update item", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "item not found", nil)
		return
	}
	utils.Success(c, "item updated", nil)
}

// Delete refuses while any open order still references the item, so open
// tabs never point at a missing catalog row.
func (h *ItemController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var open int64
	if err := h.DB.Model(&models.OrderItem{}).Where("item_id = ?", id).Count(&open).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not check open orders", err)
		return
	}
	if open > 0 {
		utils.Error(c, http.StatusConflict, "item is on an open order", nil)
		return
	}

	res := h.DB.Delete(&models.Item{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete item", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "item not found", nil)
		return
	}
	utils.Success(c, "item deleted", nil)
}

type StockAdjustInput struct {
	NewStock int    `json:"new_stock" binding:"gte=0"`
	Reason   string `json:"reason" binding:"required"`
}

// AdjustStock edits the stock count manually (restock, breakage) and keeps
// an audit row with the before/after values.
func (h *ItemController) AdjustStock(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	var in StockAdjustInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}

		adj := models.StockAdjustment{
			ItemID:      item.ID,
			OldStock:    item.Stock,
			NewStock:    in.NewStock,
			Delta:       in.NewStock - item.Stock,
			Reason:      in.Reason,
			CreatedByID: uid,
		}
		if err := tx.Create(&adj).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).Where("id = ?", item.ID).
			Update("stock", in.NewStock).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "item not found", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "could not adjust stock", err)
		return
	}
	utils.Success(c, "stock adjusted", nil)
}
