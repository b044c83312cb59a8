package classifier

import (
	"context"
	"strings"

	"github.com/gfranca/finbot/internal/models"
)

// Classifier maps a raw user message to one intent label.
type Classifier interface {
	ClassifyIntent(ctx context.Context, message string) string
}

// KeywordClassifier is the deterministic fallback: substring matching
// against a fixed keyword set per label, no external calls.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// intentKeywords is evaluated in order; the first label with a matching
// keyword wins and anything unmatched resolves to chat.
var intentKeywords = []struct {
	intent   string
	keywords []string
}{
	{models.IntentAddExpense, []string{"gastei", "gasto", "comprei", "paguei", "despesa"}},
	{models.IntentCheckBalance, []string{"saldo", "quanto tenho", "quanto eu tenho"}},
	{models.IntentGetReport, []string{"relatório", "relatorio", "resumo", "histórico", "historico"}},
}

func (c *KeywordClassifier) ClassifyIntent(_ context.Context, message string) string {
	message = strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(message, keyword) {
				return entry.intent
			}
		}
	}
	return models.IntentChat
}
