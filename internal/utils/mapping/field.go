package mapping

import (
	"encoding/json"

	"github.com/myaccountdemo/account_api/internal/models"
	"github.com/shopspring/decimal"
)

// Field helpers for tolerant entity mapping. Each lookup is independent: a
// missing, null or malformed field leaves the target untouched so one bad
// column never aborts mapping of the rest of the row.

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func strField(fields map[string]json.RawMessage, key string, dst **string) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*dst = &s
	}
}

func int64Field(fields map[string]json.RawMessage, key string, dst *int64) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		*dst = n
	}
}

func decimalField(fields map[string]json.RawMessage, key string, dst **decimal.Decimal) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		*dst = &d
	}
}

func dateField(fields map[string]json.RawMessage, key string, dst **models.Date) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return
	}
	var d models.Date
	if err := json.Unmarshal(raw, &d); err == nil {
		*dst = &d
	}
}

func boolField(fields map[string]json.RawMessage, key string, dst **bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*dst = &b
	}
}
