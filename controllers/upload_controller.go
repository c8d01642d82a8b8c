package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type UploadController struct{ Svc *services.UploadService }

func NewUploadController(s *services.UploadService) *UploadController {
	return &UploadController{Svc: s}
}

type uploadRequest struct {
	Base64Image string `json:"base64Image" binding:"required"`
}

// POST /upload/imgbb
func (h *UploadController) ImgBB(c *gin.Context) {
	var req uploadRequest
	if !bindJSON(c, &req, "base64Image required") {
		return
	}
	url, err := h.Svc.Upload(c.Request.Context(), req.Base64Image)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"imageUrl": url})
}
