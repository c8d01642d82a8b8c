package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/services"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req, "Missing fields") {
		return
	}
	out, err := a.Svc.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req, "Email and password required") {
		return
	}
	out, err := a.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /auth/logout
// Tokens are stateless; the client drops its copy.
func (a *AuthController) Logout(c *gin.Context) {
	resp.Message(c, "Logged out successfully")
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	u, ok := requester(c)
	if !ok {
		return
	}
	resp.OK(c, u)
}
