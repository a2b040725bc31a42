// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/shuttlecash/internal/models"
)

// PlayerStore persists the member roster.
type PlayerStore interface {
	// CreatePlayer persists a new player. ID and timestamps are filled in by the store.
	CreatePlayer(ctx context.Context, player *models.Player) error

	// GetPlayer returns models.ErrNotFound if the player does not exist.
	GetPlayer(ctx context.Context, playerID string) (*models.Player, error)

	// UpdatePlayer returns models.ErrNotFound if the player does not exist.
	UpdatePlayer(ctx context.Context, player *models.Player) error

	// DeletePlayer returns models.ErrNotFound if the player does not exist.
	DeletePlayer(ctx context.Context, playerID string) error

	// ListPlayers returns the roster ordered by name.
	ListPlayers(ctx context.Context) ([]*models.Player, error)

	// GetPlayersByIDs returns a map of player ID to Player.
	// Players that don't exist are omitted from the result.
	GetPlayersByIDs(ctx context.Context, ids []string) (map[string]*models.Player, error)
}

// UsageStore persists shuttlecock usage sessions.
type UsageStore interface {
	// CreateUsage persists a new session. ID and CreatedAt are filled in by the store.
	CreateUsage(ctx context.Context, session *models.UsageSession) error

	// DeleteUsage returns models.ErrNotFound if the session does not exist.
	DeleteUsage(ctx context.Context, sessionID string) error

	// ListUsageByDate returns the sessions of a date in the order they were logged.
	ListUsageByDate(ctx context.Context, date string) ([]models.UsageSession, error)

	// ListUsageInRange returns the sessions of every date in r, ordered by
	// date and then logging order.
	ListUsageInRange(ctx context.Context, r models.DateRange) ([]models.UsageSession, error)
}

// PricingStore persists the pricing singleton.
type PricingStore interface {
	// GetPricing returns the current pricing.
	GetPricing(ctx context.Context) (models.PricingConfig, error)

	// UpdatePricing applies a partial update and returns the resulting pricing.
	UpdatePricing(ctx context.Context, update models.PricingUpdate) (models.PricingConfig, error)

	// SeedPricing stores the given pricing only if none exists yet.
	SeedPricing(ctx context.Context, pricing models.PricingConfig) error
}

// PaymentStore persists the payment ledger.
type PaymentStore interface {
	// UpsertPayment creates or overwrites the record for (record.Date, record.MemberID)
	// in a single atomic statement. ID, Version and RecordedAt are filled in by the store.
	UpsertPayment(ctx context.Context, record *models.PaymentRecord) error

	// GetPayment returns nil and no error when no record exists.
	GetPayment(ctx context.Context, date, memberID string) (*models.PaymentRecord, error)

	// ListPaymentsByDate returns the records of a date keyed by member ID.
	ListPaymentsByDate(ctx context.Context, date string) (map[string]*models.PaymentRecord, error)
}

// FinanceStore persists the cash book.
type FinanceStore interface {
	// CreateFinanceEntry persists a manual or membership entry. ID and
	// CreatedAt are filled in by the store. A second membership fee for the
	// same member and period fails with models.ErrConflict.
	CreateFinanceEntry(ctx context.Context, entry *models.FinanceEntry) error

	// DeleteFinanceEntry returns models.ErrNotFound if no entry of that kind exists.
	DeleteFinanceEntry(ctx context.Context, kind models.EntryKind, id string) error

	// ListFinanceEntries returns stored entries of one kind in r, ordered by
	// date and then creation.
	ListFinanceEntries(ctx context.Context, kind models.EntryKind, r models.DateRange) ([]models.FinanceEntry, error)

	// ListPaymentIncome returns the non-zero ledger payments in r as
	// settlement income entries, ordered by date and then recording time.
	ListPaymentIncome(ctx context.Context, r models.DateRange) ([]models.FinanceEntry, error)
}

// UserStore persists administrator accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername returns nil and no error when the user does not exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	PlayerStore
	UsageStore
	PricingStore
	PaymentStore
	FinanceStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
