package services

import (
	"encoding/json"
	"fmt"

	"github.com/myaccountdemo/account_api/internal/core/domain"
)

// OperationResult is the normalized form of a routine's JSON payload. The
// routines all answer with a {success, message, ...} object whose extra
// properties depend on the operation family; Normalize flattens those shapes
// into one result the services can build envelopes from.
type OperationResult struct {
	Success   bool
	Message   string
	CreatedID *int64
	Data      json.RawMessage
	Total     int
}

// Normalize applies the family-specific rules to a raw routine payload.
// It never returns an error: malformed payloads come back as a failed result
// with a diagnostic message, same as a routine-reported failure.
func Normalize(op domain.Operation, payload []byte) OperationResult {
	if len(payload) == 0 {
		return OperationResult{Message: "Database returned no result"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return OperationResult{Message: "Invalid response format: payload is not a JSON object"}
	}

	successRaw, ok := fields["success"]
	if !ok {
		return OperationResult{Message: "Invalid response format: missing 'success' property"}
	}
	var success bool
	if err := json.Unmarshal(successRaw, &success); err != nil {
		return OperationResult{Message: "Invalid response format: missing 'success' property"}
	}

	message := "Operation completed"
	if raw, ok := fields["message"]; ok {
		var m string
		if err := json.Unmarshal(raw, &m); err == nil && m != "" {
			message = m
		}
	}

	if !success {
		if message == "Operation completed" {
			message = "Operation failed"
		}
		return OperationResult{Message: message}
	}

	switch op.Family() {
	case domain.FamilyCreate:
		result := OperationResult{Success: true, Message: message}
		if raw, ok := fields[op.IDKey()]; ok {
			var id int64
			if err := json.Unmarshal(raw, &id); err == nil {
				result.CreatedID = &id
			}
		}
		return result

	case domain.FamilyRead:
		data, ok := fields["data"]
		if !ok || string(data) == "null" {
			return OperationResult{Message: fmt.Sprintf("%s operation: missing data property", op.Tag())}
		}
		return OperationResult{Success: true, Message: message, Data: data}

	case domain.FamilyUpdate:
		return OperationResult{Success: true, Message: message}

	case domain.FamilyList:
		result := OperationResult{Success: true, Message: message}
		if raw, ok := fields["data"]; ok && string(raw) != "null" {
			result.Data = raw
		}
		if raw, ok := fields["total"]; ok {
			var total int
			if err := json.Unmarshal(raw, &total); err == nil {
				result.Total = total
			}
		}
		return result

	default:
		return OperationResult{Message: fmt.Sprintf("Unknown operation: %s", op.Tag())}
	}
}
