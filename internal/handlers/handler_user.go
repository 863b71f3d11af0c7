package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/models"
)

type UserHandler struct {
	userService portssvc.UserSvcFacade
}

func NewUserHandler(userService portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create godoc
// @Summary      Create a user
// @Description  Creates a login. The password is optional and never echoed.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        user body models.User true "User fields"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} dto.UserResponse
// @Router       /api/User [post]
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, dto.UserResponse{
			Envelope: dto.FailEnvelope[*models.User]("Invalid request body: " + err.Error()),
		})
		return
	}

	resp := h.userService.Create(c.Request.Context(), user)
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List users
// @Tags         user
// @Produce      json
// @Success      200 {object} dto.UsersResponse
// @Failure      500 {object} dto.UsersResponse
// @Router       /api/User [get]
func (h *UserHandler) List(c *gin.Context) {
	resp := h.userService.BasicInfo(c.Request.Context())
	if !resp.Success {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
