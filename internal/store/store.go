// Package store provides data persistence interfaces and implementations.
// The analytics packages never touch the store; callers materialize trade
// collections here and hand them to stats and insights as plain slices.
package store

import (
	"context"
	"time"

	"trading-journal/internal/models"
)

// DataStore defines the interface for data persistence.
type DataStore interface {
	// Trades
	SaveTrade(ctx context.Context, trade *models.Trade) error
	GetTrade(ctx context.Context, id string) (*models.Trade, error)
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	// Accounts
	SaveAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAccounts(ctx context.Context) ([]models.Account, error)
	DeleteAccount(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

// TradeFilter represents filters for querying trades.
type TradeFilter struct {
	AccountID string
	Symbol    string
	Session   models.Session
	Setup     string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
