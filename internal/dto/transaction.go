package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	dom "ControleGastos/internal/domain"

	"github.com/shopspring/decimal"
)

// Kind parses kind from JSON as "income"/"expense" (any case) or as the
// numeric codes 1 (income) and 2 (expense).
type Kind struct{ k dom.Kind }

func (k *Kind) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		k.k = ""
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		var code int
		if err := json.Unmarshal(data, &code); err != nil {
			return fmt.Errorf("kind: use \"income\", \"expense\", 1 or 2")
		}
		switch code {
		case 1:
			k.k = dom.KindIncome
		case 2:
			k.k = dom.KindExpense
		default:
			return fmt.Errorf("kind: unknown code %d, use 1 (income) or 2 (expense)", code)
		}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw {
	case "1":
		k.k = dom.KindIncome
		return nil
	case "2":
		k.k = dom.KindExpense
		return nil
	}
	parsed, err := dom.ParseKind(raw)
	if err != nil {
		return err
	}
	k.k = parsed
	return nil
}

// Value returns the domain kind; empty if the field was absent.
func (k Kind) Value() dom.Kind { return k.k }

// CreateTransactionRequest is the JSON body for POST /transacao.
// Amount accepts a JSON number or a decimal string. The binding compares as
// float64; the service repeats the bound exactly.
type CreateTransactionRequest struct {
	Description    string          `json:"description" binding:"required,min=1,max=200" example:"Groceries"`
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0,lte=9999999999999999.99" swaggertype:"string" example:"150.00"`
	Kind           Kind            `json:"kind" swaggertype:"string" enums:"income,expense" example:"expense"`
	UserIdentifier string          `json:"user_identifier" binding:"required,len=10,alphanum" example:"aB3dE5gH7j"`
}

type TransactionResponse struct {
	ID             int64     `json:"id" example:"42"`
	Description    string    `json:"description" example:"Groceries"`
	Amount         string    `json:"amount" example:"150.00"`
	Kind           dom.Kind  `json:"kind" swaggertype:"string" enums:"income,expense" example:"expense"`
	UserIdentifier string    `json:"user_identifier" example:"aB3dE5gH7j"`
	UserName       string    `json:"user_name" example:"Ana Souza"`
	CreatedAt      time.Time `json:"created_at"`
}
