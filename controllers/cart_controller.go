package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type SaveCartRequest struct {
	Items *entity.LineItems `json:"items" binding:"required"`
}

// POST /orders/cart
func (h *CartController) Save(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	var req SaveCartRequest
	if !bindJSON(c, &req, "Invalid cart items") {
		return
	}
	if err := h.Svc.Save(c.Request.Context(), u.ID, req.Items); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "Cart saved")
}

// GET /orders/cart
func (h *CartController) Get(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), u.ID)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, cart)
}
