package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Invoice : Invoice Model
type Invoice struct {
	ID             string          `json:"id" bun:",pk"`
	Amount         decimal.Decimal `json:"amount" bun:",notnull,type:numeric(20,6)" validate:"required"`
	Currency       string          `json:"currency" bun:",notnull" validate:"required"`
	Memo           string          `json:"memo" bun:",nullzero"`
	MerchantWallet string          `json:"merchant_wallet" bun:",notnull" validate:"required"`
	Status         string          `json:"status" bun:",notnull,default:'PENDING'"`
	PaymentLink    string          `json:"payment_link" bun:",nullzero"`
	CreatedAt      time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      bun.NullTime    `json:"updated_at"`
	SettledAt      bun.NullTime    `json:"settled_at"`
}

func (i *Invoice) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		i.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Invoice)(nil)
