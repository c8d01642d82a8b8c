package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	var in services.CheckoutInput
	if !bindJSON(c, &in, "Invalid amount") {
		return
	}
	secret, err := h.Svc.CreateCheckoutIntent(c.Request.Context(), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"clientSecret": secret})
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	var in services.CreateOrderInput
	if !bindJSON(c, &in, "Invalid order data") {
		return
	}
	o, err := h.Svc.Create(c.Request.Context(), u.ID, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	o, err := h.Svc.Get(c.Request.Context(), c.Param("id"), u)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /orders/user/:userId
func (h *OrderController) ListForUser(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	rows, err := h.Svc.ListForUser(c.Request.Context(), c.Param("userId"), u)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /orders (admin)
func (h *OrderController) ListAll(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	rows, err := h.Svc.ListAll(c.Request.Context(), u)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, rows)
}
