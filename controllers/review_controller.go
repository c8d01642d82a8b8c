package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	var in services.ReviewInput
	if !bindJSON(c, &in, "Missing required fields") {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), u.ID, in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, r)
}

// GET /reviews/:productId
func (h *ReviewController) ListByProduct(c *gin.Context) {
	rows, err := h.Svc.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, rows)
}
