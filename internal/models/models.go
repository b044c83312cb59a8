package models

import "time"

// Intent labels produced by the classifier.
const (
	IntentAddExpense   = "add_expense"
	IntentCheckBalance = "check_balance"
	IntentGetReport    = "get_report"
	IntentChat         = "chat"
)

// Intents lists every label the classifier is expected to produce.
var Intents = []string{IntentAddExpense, IntentCheckBalance, IntentGetReport, IntentChat}

// KnownIntent reports whether label belongs to the fixed intent set.
func KnownIntent(label string) bool {
	for _, intent := range Intents {
		if intent == label {
			return true
		}
	}
	return false
}

// DefaultCategory is used whenever extraction cannot determine a category.
const DefaultCategory = "outros"

// Categories is the closed expense category vocabulary.
var Categories = []string{
	"alimentação",
	"transporte",
	"saúde",
	"educação",
	"lazer",
	"utilidades",
	"vestuário",
	DefaultCategory,
}

// User is created lazily on first interaction and never duplicated per id.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction is immutable once created; balance is derived by summing amounts.
type Transaction struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// Conversation is one row of the append-only conversation log.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ExtractedTransaction is the structured record pulled out of a free-text
// message. Defaults apply per field: zero amount, "outros" category and the
// raw input as description.
type ExtractedTransaction struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
