package handler

import (
	"net/http"

	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "usuario o contraseña no válidos")
		return
	}

	resp, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONCreated(c, resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "usuario o contraseña no válidos")
		return
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
		return
	}
	utils.JSONData(c, resp)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "se requiere refresh_token")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
		return
	}
	utils.JSONData(c, gin.H{"access_token": accessToken})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "se requiere refresh_token")
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error interno del servidor")
		return
	}
	utils.JSONMessage(c, "sesión cerrada")
}
