package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/myaccountdemo/account_api/internal/apperrors"
	"github.com/myaccountdemo/account_api/internal/models"
)

// EmployeeFromJSON maps one manage_employee row onto an Employee.
func EmployeeFromJSON(raw json.RawMessage) (models.Employee, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Employee{}, fmt.Errorf("%w: not an employee object: %v", apperrors.ErrMalformedResponse, err)
	}

	var e models.Employee
	int64Field(fields, "emp_details_id", &e.EmpDetailsID)
	strField(fields, "employee_name", &e.EmployeeName)
	decimalField(fields, "employee_amount", &e.EmployeeAmount)
	strField(fields, "employee_descripation", &e.EmployeeDescripation)
	dateField(fields, "insert_date", &e.InsertDate)
	return e, nil
}

// EmployeesFromJSON maps a manage_employee list payload. Non-object rows are
// skipped.
func EmployeesFromJSON(raw json.RawMessage) ([]models.Employee, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: not an employee list: %v", apperrors.ErrMalformedResponse, err)
	}
	employees := make([]models.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := EmployeeFromJSON(row)
		if err != nil {
			continue
		}
		employees = append(employees, e)
	}
	return employees, nil
}
