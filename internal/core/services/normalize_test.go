package services_test

import (
	"testing"

	"github.com/myaccountdemo/account_api/internal/core/domain"
	"github.com/myaccountdemo/account_api/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestNormalize_NilPayload(t *testing.T) {
	result := services.Normalize(domain.AccountCreate, nil)
	assert.False(t, result.Success)
	assert.Equal(t, "Database returned no result", result.Message)
}

func TestNormalize_NotAnObject(t *testing.T) {
	result := services.Normalize(domain.AccountCreate, []byte(`[1,2,3]`))
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid response format: payload is not a JSON object", result.Message)
}

func TestNormalize_MissingSuccess(t *testing.T) {
	result := services.Normalize(domain.AccountCreate, []byte(`{"message":"created","acid":7}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid response format: missing 'success' property", result.Message)
}

func TestNormalize_RoutineFailurePassesMessageThrough(t *testing.T) {
	result := services.Normalize(domain.AccountUpdate, []byte(`{"success":false,"message":"Account not found"}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Account not found", result.Message)
}

func TestNormalize_RoutineFailureWithoutMessage(t *testing.T) {
	result := services.Normalize(domain.AccountUpdate, []byte(`{"success":false}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Operation failed", result.Message)
}

func TestNormalize_CreateSurfacesID(t *testing.T) {
	result := services.Normalize(domain.AccountCreateGetMoney, []byte(`{"success":true,"message":"created","acid":42}`))
	assert.True(t, result.Success)
	assert.Equal(t, "created", result.Message)
	if assert.NotNil(t, result.CreatedID) {
		assert.Equal(t, int64(42), *result.CreatedID)
	}
}

func TestNormalize_CreateUsesOperationIDKey(t *testing.T) {
	result := services.Normalize(domain.UserCreate, []byte(`{"success":true,"user_id":9}`))
	assert.True(t, result.Success)
	if assert.NotNil(t, result.CreatedID) {
		assert.Equal(t, int64(9), *result.CreatedID)
	}

	result = services.Normalize(domain.EmployeeDetailsCreate, []byte(`{"success":true,"employee_id":3}`))
	assert.True(t, result.Success)
	if assert.NotNil(t, result.CreatedID) {
		assert.Equal(t, int64(3), *result.CreatedID)
	}
}

func TestNormalize_CreateWithoutIDStillSucceeds(t *testing.T) {
	result := services.Normalize(domain.AccountCreate, []byte(`{"success":true}`))
	assert.True(t, result.Success)
	assert.Nil(t, result.CreatedID)
	assert.Equal(t, "Operation completed", result.Message)
}

func TestNormalize_ReadRequiresData(t *testing.T) {
	result := services.Normalize(domain.AccountRead, []byte(`{"success":true,"message":"ok"}`))
	assert.False(t, result.Success)
	assert.Equal(t, "READ operation: missing data property", result.Message)

	result = services.Normalize(domain.EmployeeSelect, []byte(`{"success":true,"data":null}`))
	assert.False(t, result.Success)
	assert.Equal(t, "SELECT operation: missing data property", result.Message)
}

func TestNormalize_ReadReturnsData(t *testing.T) {
	result := services.Normalize(domain.AccountRead, []byte(`{"success":true,"data":{"acid":1}}`))
	assert.True(t, result.Success)
	assert.JSONEq(t, `{"acid":1}`, string(result.Data))
}

func TestNormalize_UpdatePassesThrough(t *testing.T) {
	result := services.Normalize(domain.AccountUpdate, []byte(`{"success":true,"message":"Account updated successfully"}`))
	assert.True(t, result.Success)
	assert.Equal(t, "Account updated successfully", result.Message)
	assert.Nil(t, result.Data)
}

func TestNormalize_ListTotal(t *testing.T) {
	result := services.Normalize(domain.AccountList, []byte(`{"success":true,"data":[{"acid":1}],"total":37}`))
	assert.True(t, result.Success)
	assert.Equal(t, 37, result.Total)
	assert.JSONEq(t, `[{"acid":1}]`, string(result.Data))
}

func TestNormalize_ListMissingTotalDefaultsToZero(t *testing.T) {
	result := services.Normalize(domain.EmployeeList, []byte(`{"success":true,"data":[]}`))
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Total)
}

func TestNormalize_UnknownOperation(t *testing.T) {
	result := services.Normalize(domain.AccountOperation("FROB"), []byte(`{"success":true}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown operation: FROB", result.Message)
}
