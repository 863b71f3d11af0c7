package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/models"
)

type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func NewAccountHandler(accountService portssvc.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

func (h *AccountHandler) bindAccount(c *gin.Context) (models.Account, bool) {
	var acct models.Account
	if err := c.ShouldBindJSON(&acct); err != nil {
		c.JSON(http.StatusBadRequest, dto.AccountResponse{
			Envelope: dto.FailEnvelope[*models.Account]("Invalid request body: " + err.Error()),
		})
		return models.Account{}, false
	}
	return acct, true
}

// CreateGetMoney godoc
// @Summary      Record a get-money transaction
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        account body models.Account true "Transaction fields"
// @Success      200 {object} dto.AccountResponse
// @Failure      400 {object} dto.AccountResponse
// @Router       /api/Account/CreateGetMoney [post]
func (h *AccountHandler) CreateGetMoney(c *gin.Context) {
	acct, ok := h.bindAccount(c)
	if !ok {
		return
	}
	respond(c, h.accountService.CreateGetMoney(c.Request.Context(), acct))
}

// CreateGiveMoney godoc
// @Summary      Record a give-money transaction
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        account body models.Account true "Transaction fields"
// @Success      200 {object} dto.AccountResponse
// @Failure      400 {object} dto.AccountResponse
// @Router       /api/Account/CreateGiveMoney [post]
func (h *AccountHandler) CreateGiveMoney(c *gin.Context) {
	acct, ok := h.bindAccount(c)
	if !ok {
		return
	}
	respond(c, h.accountService.CreateGiveMoney(c.Request.Context(), acct))
}

// CompleteTransaction godoc
// @Summary      Record both legs of a transaction at once
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        account body models.Account true "Transaction fields"
// @Success      200 {object} dto.AccountResponse
// @Failure      400 {object} dto.AccountResponse
// @Router       /api/Account/CompleteTransaction [post]
func (h *AccountHandler) CompleteTransaction(c *gin.Context) {
	acct, ok := h.bindAccount(c)
	if !ok {
		return
	}
	respond(c, h.accountService.CreateComplete(c.Request.Context(), acct))
}

// Create godoc
// @Summary      Create an account row
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        account body models.Account true "Account fields"
// @Success      200 {object} dto.AccountResponse
// @Failure      400 {object} dto.AccountResponse
// @Router       /api/Account [post]
func (h *AccountHandler) Create(c *gin.Context) {
	acct, ok := h.bindAccount(c)
	if !ok {
		return
	}
	respond(c, h.accountService.Create(c.Request.Context(), acct))
}

// GetByID godoc
// @Summary      Fetch one account by id
// @Tags         account
// @Produce      json
// @Param        id path int true "Account id"
// @Success      200 {object} dto.AccountResponse
// @Failure      404 {object} dto.AccountResponse
// @Router       /api/Account/{id} [get]
func (h *AccountHandler) GetByID(c *gin.Context) {
	acid, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := h.accountService.GetByID(c.Request.Context(), acid)
	if !resp.Success {
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List all accounts
// @Tags         account
// @Produce      json
// @Success      200 {object} dto.AccountListResponse
// @Failure      500 {object} dto.AccountListResponse
// @Router       /api/Account [get]
func (h *AccountHandler) List(c *gin.Context) {
	resp := h.accountService.List(c.Request.Context())
	if !resp.Success {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListByDateRange godoc
// @Summary      List accounts within a transaction-date window
// @Tags         account
// @Produce      json
// @Param        start_date query string false "Window start (YYYY-MM-DD)"
// @Param        end_date   query string false "Window end (YYYY-MM-DD)"
// @Success      200 {object} dto.AccountListResponse
// @Failure      400 {object} dto.AccountListResponse
// @Router       /api/Account/by-date-range [get]
func (h *AccountHandler) ListByDateRange(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.FailEnvelope[[]models.Account]("Invalid query parameters: "+err.Error()))
		return
	}

	startDate, err := models.ParseDate(params.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.FailEnvelope[[]models.Account]("Invalid start_date: "+err.Error()))
		return
	}
	endDate, err := models.ParseDate(params.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.FailEnvelope[[]models.Account]("Invalid end_date: "+err.Error()))
		return
	}

	resp := h.accountService.ListByDateRange(c.Request.Context(), startDate, endDate)
	if !resp.Success {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update an account row
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        id path int true "Account id"
// @Param        account body models.Account true "Account fields"
// @Success      200 {object} dto.AccountResponse
// @Failure      400 {object} dto.AccountResponse
// @Router       /api/Account/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	acid, ok := parseIDParam(c)
	if !ok {
		return
	}
	acct, ok := h.bindAccount(c)
	if !ok {
		return
	}
	acct.Acid = acid
	respond(c, h.accountService.Update(c.Request.Context(), acct))
}

// Delete godoc
// @Summary      Delete an account row
// @Tags         account
// @Produce      json
// @Param        id path int true "Account id"
// @Success      200 {object} dto.AccountResponse
// @Failure      400 {object} dto.AccountResponse
// @Router       /api/Account/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	acid, ok := parseIDParam(c)
	if !ok {
		return
	}
	respond(c, h.accountService.Delete(c.Request.Context(), acid))
}

func respond(c *gin.Context, resp dto.AccountResponse) {
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.AccountResponse{
			Envelope: dto.FailEnvelope[*models.Account]("Invalid id parameter"),
		})
		return 0, false
	}
	return id, true
}
