package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/myaccountdemo/account_api/internal/apperrors"
	"github.com/myaccountdemo/account_api/internal/models"
)

// AccountFromJSON maps one routine-emitted JSON object onto an Account. Keys
// are the lowercase column names the routines emit; camelCase aliases for the
// charter descriptions are accepted because older routine versions emitted
// them that way.
func AccountFromJSON(raw json.RawMessage) (models.Account, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Account{}, fmt.Errorf("%w: not an account object: %v", apperrors.ErrMalformedResponse, err)
	}

	var a models.Account
	int64Field(fields, "acid", &a.Acid)

	strField(fields, "name", &a.Name)
	decimalField(fields, "getmoney", &a.GetMoney)
	decimalField(fields, "intrest", &a.Intrest)
	dateField(fields, "date", &a.Date)
	strField(fields, "agent", &a.Agent)
	strField(fields, "remark", &a.Remark)
	decimalField(fields, "utino", &a.UtiNo)

	decimalField(fields, "givemoney", &a.GiveMoney)
	strField(fields, "givename", &a.GiveName)
	strField(fields, "giveremark", &a.GiveRemark)
	decimalField(fields, "giveutino", &a.GiveUtiNo)
	dateField(fields, "givedate", &a.GiveDate)
	strField(fields, "giveagent", &a.GiveAgent)

	strField(fields, "charterdescription", &a.CharterDescription)
	if a.CharterDescription == nil {
		strField(fields, "charterDescription", &a.CharterDescription)
	}
	strField(fields, "givecharterdescription", &a.GiveCharterDescription)
	if a.GiveCharterDescription == nil {
		strField(fields, "giveCharterDescription", &a.GiveCharterDescription)
	}

	dateField(fields, "created_at", &a.CreatedAt)
	dateField(fields, "modified_at", &a.ModifiedAt)
	boolField(fields, "ismoney", &a.IsMoney)

	return a, nil
}

// AccountsFromJSON maps a routine-emitted JSON array onto a slice of
// accounts. A row that is not an object is skipped rather than failing the
// whole page.
func AccountsFromJSON(raw json.RawMessage) ([]models.Account, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: not an account list: %v", apperrors.ErrMalformedResponse, err)
	}
	accounts := make([]models.Account, 0, len(rows))
	for _, row := range rows {
		a, err := AccountFromJSON(row)
		if err != nil {
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
