package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/models"
)

type EmployeeDetailsHandler struct {
	detailsService portssvc.EmployeeDetailsSvcFacade
}

func NewEmployeeDetailsHandler(detailsService portssvc.EmployeeDetailsSvcFacade) *EmployeeDetailsHandler {
	return &EmployeeDetailsHandler{detailsService: detailsService}
}

// Create godoc
// @Summary      Create an employee contact record
// @Tags         employee-details
// @Accept       json
// @Produce      json
// @Param        details body models.EmployeeDetails true "Contact fields"
// @Success      200 {object} dto.EmployeeDetailsResponse
// @Failure      400 {object} dto.EmployeeDetailsResponse
// @Router       /api/EmployeeDetails [post]
func (h *EmployeeDetailsHandler) Create(c *gin.Context) {
	var det models.EmployeeDetails
	if err := c.ShouldBindJSON(&det); err != nil {
		c.JSON(http.StatusBadRequest, dto.EmployeeDetailsResponse{
			Envelope: dto.FailEnvelope[*models.EmployeeDetails]("Invalid request body: " + err.Error()),
		})
		return
	}

	resp := h.detailsService.Create(c.Request.Context(), det)
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BasicInfo godoc
// @Summary      List employee names and ids
// @Tags         employee-details
// @Produce      json
// @Success      200 {object} dto.EmployeeDetailsListResponse
// @Failure      500 {object} dto.EmployeeDetailsListResponse
// @Router       /api/EmployeeDetails/basic-info [get]
func (h *EmployeeDetailsHandler) BasicInfo(c *gin.Context) {
	resp := h.detailsService.BasicInfo(c.Request.Context())
	if !resp.Success {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AllDetails godoc
// @Summary      List full employee contact records
// @Tags         employee-details
// @Produce      json
// @Success      200 {object} dto.EmployeeDetailsListResponse
// @Failure      500 {object} dto.EmployeeDetailsListResponse
// @Router       /api/EmployeeDetails/all-details [get]
func (h *EmployeeDetailsHandler) AllDetails(c *gin.Context) {
	resp := h.detailsService.AllDetails(c.Request.Context())
	if !resp.Success {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
