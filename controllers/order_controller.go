package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gbalekage/my-pos-v2-sub000/models"
	"github.com/gbalekage/my-pos-v2-sub000/service"
	"github.com/gbalekage/my-pos-v2-sub000/utils"
)

type OrderController struct {
	Orders *service.OrderService
}

func NewOrderController(orders *service.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type OrderLineInput struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

func toLines(in []OrderLineInput) []service.LineRequest {
	out := make([]service.LineRequest, 0, len(in))
	for _, l := range in {
		out = append(out, service.LineRequest{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return out
}

type CreateOrderInput struct {
	TableID uint             `json:"tableId" binding:"required"`
	Items   []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

// POST /api/orders/create
func (h *OrderController) Create(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	var in CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), service.CreateOrderCmd{
		AttendantID:   uid,
		TableID:       &in.TableID,
		Lines:         toLines(in.Items),
		IdempotentKey: c.GetHeader("Idempotent-Key"),
	})
	if err != nil {
		failService(c, err, "could not create order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GET /api/orders/table/:id
func (h *OrderController) ByTable(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.OrderByTable(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrNoActiveOrder {
			c.JSON(http.StatusOK, gin.H{"message": "No active order"})
			return
		}
		failService(c, err, "could not load order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type AddItemsInput struct {
	OrderID uint             `json:"orderId" binding:"required"`
	Items   []OrderLineInput `json:"items" binding:"required,min=1,dive"`
}

// POST /api/orders/new-items
func (h *OrderController) AddItems(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	var in AddItemsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	order, err := h.Orders.AddItems(c.Request.Context(), service.AddItemsCmd{
		OrderID: in.OrderID,
		ActorID: uid,
		Lines:   toLines(in.Items),
	})
	if err != nil {
		failService(c, err, "could not add items")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type RemoveItemsInput struct {
	ItemsToCancel []OrderLineInput `json:"itemsToCancel" binding:"required,min=1,dive"`
}

// DELETE /api/orders/remove-item/:orderId
func (h *OrderController) RemoveItems(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	orderID, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var in RemoveItemsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	order, err := h.Orders.RemoveItems(c.Request.Context(), service.RemoveItemsCmd{
		OrderID: orderID,
		ActorID: uid,
		Lines:   toLines(in.ItemsToCancel),
	})
	if err != nil {
		failService(c, err, "could not cancel items")
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, gin.H{"message": "order deleted, table freed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type DiscountInput struct {
	DiscountPercentage int `json:"discountPercentage" binding:"required"`
}

// POST /api/orders/:orderId/discount
func (h *OrderController) Discount(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	orderID, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var in DiscountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	order, err := h.Orders.Discount(c.Request.Context(), service.DiscountCmd{
		OrderID:    orderID,
		Percentage: in.DiscountPercentage,
		ActorID:    uid,
	})
	if err != nil {
		failService(c, err, "could not apply discount")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type SplitInput struct {
	NewTableID   uint             `json:"newTableId" binding:"required"`
	ItemsToSplit []OrderLineInput `json:"itemsToSplit" binding:"required,min=1,dive"`
}

// POST /api/orders/:orderId/split-bill
func (h *OrderController) Split(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	orderID, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var in SplitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	order, err := h.Orders.Split(c.Request.Context(), service.SplitCmd{
		OrderID:    orderID,
		NewTableID: in.NewTableID,
		ActorID:    uid,
		Lines:      toLines(in.ItemsToSplit),
	})
	if err != nil {
		failService(c, err, "could not split order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// POST /api/orders/sign/:orderId/:clientId
func (h *OrderController) Sign(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	orderID, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	clientID, ok := parseUintParam(c, "clientId")
	if !ok {
		return
	}

	sale, err := h.Orders.Sign(c.Request.Context(), orderID, clientID, uid)
	if err != nil {
		failService(c, err, "could not sign order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sale": sale})
}

type PayInput struct {
	PaymentMethod  string  `json:"paymentMethod" binding:"required"`
	AmountReceived float64 `json:"amountReceived" binding:"required,gt=0"`
}

// POST /api/orders/pay/:orderId
func (h *OrderController) Pay(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, err.Error(), nil)
		return
	}
	orderID, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var in PayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	sale, err := h.Orders.Pay(c.Request.Context(), service.PayCmd{
		OrderID:        orderID,
		Method:         models.PaymentMethod(in.PaymentMethod),
		AmountReceived: in.AmountReceived,
		ActorID:        uid,
	})
	if err != nil {
		failService(c, err, "could not finalize payment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sale": sale, "change": sale.Change})
}

// GET /api/orders/print-bill/:tableId
func (h *OrderController) PrintBill(c *gin.Context) {
	tableID, ok := parseUintParam(c, "tableId")
	if !ok {
		return
	}
	if err := h.Orders.PrintBill(c.Request.Context(), tableID); err != nil {
		failService(c, err, "could not print bill")
		return
	}
	utils.Success(c, "bill queued for printing", nil)
}
