package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

type ClientInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *ClientController) List(c *gin.Context) {
	var rows []models.Client
	if err := h.DB.Order("name ASC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list clients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (h *ClientController) Create(c *gin.Context) {
	var in ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	row := models.Client{Name: in.Name, Phone: in.Phone, Address: in.Address}
	if err := h.DB.Create(&row).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create client", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": row})
}

// SignedBills lists a client's receivables.
func (h *ClientController) SignedBills(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var rows []models.SignedBill
	if err := h.DB.Where("client_id = ?", id).Order("created_at DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list signed bills", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
