package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/myaccountdemo/account_api/internal/core/ports/services"
	"github.com/myaccountdemo/account_api/internal/dto"
	"github.com/myaccountdemo/account_api/internal/models"
)

type EmployeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func NewEmployeeHandler(employeeService portssvc.EmployeeSvcFacade) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) bindEmployee(c *gin.Context) (models.Employee, bool) {
	var emp models.Employee
	if err := c.ShouldBindJSON(&emp); err != nil {
		c.JSON(http.StatusBadRequest, dto.EmployeeResponse{
			Envelope: dto.FailEnvelope[*models.Employee]("Invalid request body: " + err.Error()),
		})
		return models.Employee{}, false
	}
	return emp, true
}

func (h *EmployeeHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.EmployeeResponse{
			Envelope: dto.FailEnvelope[*models.Employee]("Invalid id parameter"),
		})
		return 0, false
	}
	return id, true
}

func respondEmployee(c *gin.Context, resp dto.EmployeeResponse) {
	if !resp.Success {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Create an employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        employee body models.Employee true "Employee fields"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      400 {object} dto.EmployeeResponse
// @Router       /api/Employee [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	emp, ok := h.bindEmployee(c)
	if !ok {
		return
	}
	respondEmployee(c, h.employeeService.Create(c.Request.Context(), emp))
}

// GetByID godoc
// @Summary      Fetch one employee by id
// @Tags         employee
// @Produce      json
// @Param        id path int true "Employee id"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      404 {object} dto.EmployeeResponse
// @Router       /api/Employee/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	resp := h.employeeService.GetByID(c.Request.Context(), id)
	if !resp.Success {
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List all employees
// @Tags         employee
// @Produce      json
// @Success      200 {object} dto.EmployeeListResponse
// @Failure      500 {object} dto.EmployeeListResponse
// @Router       /api/Employee [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	resp := h.employeeService.List(c.Request.Context())
	if !resp.Success {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update an employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee id"
// @Param        employee body models.Employee true "Employee fields"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      400 {object} dto.EmployeeResponse
// @Router       /api/Employee/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	emp, ok := h.bindEmployee(c)
	if !ok {
		return
	}
	emp.EmpDetailsID = id
	respondEmployee(c, h.employeeService.Update(c.Request.Context(), emp))
}

// Delete godoc
// @Summary      Delete an employee
// @Tags         employee
// @Produce      json
// @Param        id path int true "Employee id"
// @Success      200 {object} dto.EmployeeResponse
// @Failure      400 {object} dto.EmployeeResponse
// @Router       /api/Employee/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	respondEmployee(c, h.employeeService.Delete(c.Request.Context(), id))
}
