package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /products
func (h *ProductController) List(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /products/:id
func (h *ProductController) Detail(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /products (admin)
func (h *ProductController) Create(c *gin.Context) {
	var in services.ProductInput
	if !bindJSON(c, &in, "Invalid product data") {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /products/:id (admin)
func (h *ProductController) Update(c *gin.Context) {
	var in services.ProductInput
	if !bindJSON(c, &in, "Invalid product data") {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id (admin)
func (h *ProductController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "Product deleted")
}

// GET /admin/products/export (admin)
func (h *ProductController) Export(c *gin.Context) {
	rows, err := h.Svc.List(c.Request.Context())
	if err != nil {
		resp.Fail(c, err)
		return
	}
	file, err := services.BuildCatalogWorkbook(rows)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	name := fmt.Sprintf("products-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+name)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
