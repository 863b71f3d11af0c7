package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/models"
)

type AccountRecordHandler struct {
	recordService portssvc.AccountRecordSvcFacade
}

func NewAccountRecordHandler(recordService portssvc.AccountRecordSvcFacade) *AccountRecordHandler {
	return &AccountRecordHandler{recordService: recordService}
}

// GetRecords godoc
// @Summary      Fetch the paginated records grid
// @Description  Returns one page of transaction records with page-level totals.
// @Tags         account-record
// @Accept       json
// @Produce      json
// @Param        query body dto.AccountRecordsRequest true "Grid query"
// @Success      200 {object} dto.AccountRecordsResponse
// @Failure      400 {object} dto.AccountRecordsResponse
// @Router       /api/AccountRecord/records [post]
func (h *AccountRecordHandler) GetRecords(c *gin.Context) {
	var req dto.AccountRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AccountRecordsResponse{
			Envelope: dto.FailEnvelope[[]models.AccountRecord]("Invalid request body: " + err.Error()),
		})
		return
	}

	resp := h.recordService.GetRecords(c.Request.Context(), req)
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
