package storage

import (
	"context"
	"sync"
	"time"

	"github.com/gfranca/finbot/internal/models"
)

// MemoryStorage is the in-process implementation used for local runs and
// tests. Ordering semantics match the Postgres implementation: reads are
// most recent first.
type MemoryStorage struct {
	mu            sync.RWMutex
	users         map[string]*models.User
	transactions  map[string][]models.Transaction
	conversations map[string][]models.Conversation
	nextTxID      int64
	nextConvID    int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:         make(map[string]*models.User),
		transactions:  make(map[string][]models.Transaction),
		conversations: make(map[string][]models.Conversation),
	}
}

func (s *MemoryStorage) GetOrCreateUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, exists := s.users[id]; exists {
		copied := *user
		return &copied, nil
	}

	user := &models.User{
		ID:        id,
		CreatedAt: time.Now(),
	}
	s.users[id] = user
	copied := *user
	return &copied, nil
}

func (s *MemoryStorage) CreateTransaction(_ context.Context, userID string, amount float64, category, description string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTxID++
	tx := models.Transaction{
		ID:          s.nextTxID,
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        time.Now(),
	}
	s.transactions[userID] = append(s.transactions[userID], tx)

	copied := tx
	return &copied, nil
}

func (s *MemoryStorage) GetUserBalance(_ context.Context, userID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var balance float64
	for _, tx := range s.transactions[userID] {
		balance += tx.Amount
	}
	return balance, nil
}

func (s *MemoryStorage) GetUserTransactions(_ context.Context, userID string, limit int) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.transactions[userID]
	result := make([]models.Transaction, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, stored[i])
	}
	return result, nil
}

func (s *MemoryStorage) SaveConversation(_ context.Context, userID, message, response, intent string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextConvID++
	conv := models.Conversation{
		ID:        s.nextConvID,
		UserID:    userID,
		Message:   message,
		Response:  response,
		Intent:    intent,
		Timestamp: time.Now(),
	}
	s.conversations[userID] = append(s.conversations[userID], conv)

	copied := conv
	return &copied, nil
}

func (s *MemoryStorage) GetUserConversationHistory(_ context.Context, userID string, limit int) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.conversations[userID]
	result := make([]models.Conversation, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, stored[i])
	}
	return result, nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
