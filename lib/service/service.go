package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"

	"github.com/stablepay/stablepay.go/rabbitmq"
	"github.com/stablepay/stablepay.go/usdc"
)

type PaylinkService struct {
	Config         *Config
	DB             *bun.DB
	Logger         *lecho.Logger
	InvoicePubSub  *Pubsub
	RabbitMQClient rabbitmq.Client
}

// the bun-backed store is what the reconciler runs against in production
var _ usdc.InvoiceStore = (*PaylinkService)(nil)
