package dto

import "github.com/myaccountdemo/account_api/internal/models"

// EmployeeResponse wraps a single manage_employee operation result.
type EmployeeResponse struct {
	Envelope[*models.Employee]
	EmpDetailsID *int64 `json:"emp_details_id,omitempty"`
}

// EmployeeListResponse wraps employee list results.
type EmployeeListResponse = Envelope[[]models.Employee]

// EmployeeDetailsResponse wraps a create_employee result.
type EmployeeDetailsResponse struct {
	Envelope[*models.EmployeeDetails]
	EmployeeID *int64 `json:"employee_id,omitempty"`
}

// EmployeeDetailsListResponse wraps employee-details list results.
type EmployeeDetailsListResponse = Envelope[[]models.EmployeeDetails]
