package models

import "github.com/shopspring/decimal"

// Employee is the manage_employee entity (tbl_employee). Not interchangeable
// with EmployeeDetails, which is a separate table with different fields.
//
// The employee_descripation spelling is part of the wire contract.
type Employee struct {
	EmpDetailsID         int64            `json:"emp_details_id"`
	EmployeeName         *string          `json:"employee_name"`
	EmployeeAmount       *decimal.Decimal `json:"employee_amount"`
	EmployeeDescripation *string          `json:"employee_descripation"`
	InsertDate           *Date            `json:"insert_date"`
}

// EmployeeDetails is the contact-info employee entity (tbl_employee_info).
type EmployeeDetails struct {
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Email        *string `json:"email"`
	PhoneNo      *string `json:"phoneno"`
}
