package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/middleware"
)

type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

func NewAuthHandler(authService portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Validates credentials and returns a bearer token on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} dto.LoginResponse
// @Router       /api/Auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginResponse{
			Success: false,
			Message: "Invalid request body",
			UserID:  -1,
		})
		return
	}

	resp := h.authService.Authenticate(c.Request.Context(), req)
	if !resp.Success {
		c.JSON(http.StatusUnauthorized, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidateToken godoc
// @Summary      Validate the caller's bearer token
// @Description  Returns the identity claims of a valid token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.TokenIdentityResponse
// @Failure      401 {object} map[string]interface{}
// @Router       /api/Auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	ctx := c.Request.Context()
	userID, _ := middleware.GetUserIDFromCtx(ctx)
	username, _ := middleware.GetUsernameFromCtx(ctx)

	c.JSON(http.StatusOK, dto.TokenIdentityResponse{
		Success:  true,
		Message:  "Token is valid",
		UserID:   userID,
		Username: username,
	})
}
