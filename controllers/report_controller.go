package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/service"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type ReportController struct {
	DB      *gorm.DB
	Closing *service.ClosingService
}

func NewReportController(db *gorm.DB, closing *service.ClosingService) *ReportController {
	return &ReportController{DB: db, Closing: closing}
}

type CloseDayInput struct {
	DeclaredAmounts struct {
		Cash   float64 `json:"cash"`
		Card   float64 `json:"card"`
		Mobile float64 `json:"mobile"`
	} `json:"declaredAmounts"`
	DeclaredExpenses float64 `json:"declaredExpenses"`
	Notes            string  `json:"notes"`
}

// POST /api/repports/close/:date
func (h *ReportController) CloseDay(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	var in CloseDayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	snapshot, err := h.Closing.CloseDay(c.Request.Context(), service.CloseDayCmd{
		Date:             c.Param("date"),
		DeclaredCash:     in.DeclaredAmounts.Cash,
		DeclaredCard:     in.DeclaredAmounts.Card,
		DeclaredMobile:   in.DeclaredAmounts.Mobile,
		DeclaredExpenses: in.DeclaredExpenses,
		Notes:            in.Notes,
		ActorID:          uid,
	})
	if err != nil {
		failService(c, err, "could not close the day")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"closeDay": snapshot})
}

// GET /api/repports/close
func (h *ReportController) ListCloseDays(c *gin.Context) {
	var rows []models.CloseDay
	if err := h.DB.Order("date DESC").Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not list close days", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/repports/orders/today/pending-total
func (h *ReportController) TodayPendingTotal(c *gin.Context) {
	total, err := h.Closing.TodayPendingTotal(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not compute total", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// GET /api/repports/sales/today/total
func (h *ReportController) TodaySalesTotal(c *gin.Context) {
	total, err := h.Closing.TodaySalesTotal(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not compute total", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// GET /api/repports/signedBills/today/total
func (h *ReportController) TodaySignedTotal(c *gin.Context) {
	total, err := h.Closing.TodaySignedTotal(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not compute total", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

// GET /api/repports/expenses/today/total
func (h *ReportController) TodayExpensesTotal(c *gin.Context) {
	total, err := h.Closing.TodayExpensesTotal(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not compute total", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
