package workflow

import "github.com/gfranca/finbot/internal/models"

// State is the per-request pipeline record. Each stage takes the previous
// stage's value and returns an augmented copy; nothing is shared between
// requests. It is discarded once the response is returned.
type State struct {
	UserID              string
	UserInput           string
	Intent              string
	TransactionData     *models.ExtractedTransaction
	ConversationContext []string
	Response            string
}
