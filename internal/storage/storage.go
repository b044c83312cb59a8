package storage

import (
	"context"

	"github.com/gfranca/finbot/internal/models"
)

// Storage is the persistence boundary. Each call is one atomic operation;
// no multi-call transactions are offered or required.
type Storage interface {
	// GetOrCreateUser returns the user row for id, creating it on first
	// interaction. Calling it twice with the same id never duplicates.
	GetOrCreateUser(ctx context.Context, id string) (*models.User, error)

	CreateTransaction(ctx context.Context, userID string, amount float64, category, description string) (*models.Transaction, error)

	// GetUserBalance is the sum of all the user's transaction amounts;
	// zero when there are none.
	GetUserBalance(ctx context.Context, userID string) (float64, error)

	// GetUserTransactions returns up to limit transactions, most recent first.
	GetUserTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)

	SaveConversation(ctx context.Context, userID, message, response, intent string) (*models.Conversation, error)

	// GetUserConversationHistory returns up to limit conversation rows,
	// most recent first.
	GetUserConversationHistory(ctx context.Context, userID string, limit int) ([]models.Conversation, error)

	Close() error
}
