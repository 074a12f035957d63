package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kuittikone/internal/application/service"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/request"
	"github.com/sangkips/kuittikone/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles administrator login
// @Summary Login
// @Description Authenticate the administrator and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"username":     output.Username,
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   output.ExpiresIn,
	})
}

// Me returns the authenticated administrator
func (h *AuthHandler) Me(c *gin.Context) {
	claims := GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	response.OK(c, "Current user", gin.H{
		"username": claims.Username,
		"roles":    claims.Roles,
	})
}
