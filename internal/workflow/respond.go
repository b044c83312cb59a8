package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfranca/finbot/internal/models"
)

// respond composes the reply for the classified intent and performs the
// persistence side effects. It returns an error instead of a reply when a
// storage operation fails; Run turns that into the apology message.
func (w *Workflow) respond(ctx context.Context, state State) (string, error) {
	// The user row must exist before any transaction or conversation row
	// referencing it.
	user, err := w.storage.GetOrCreateUser(ctx, state.UserID)
	if err != nil {
		return "", fmt.Errorf("get or create user: %w", err)
	}

	switch state.Intent {
	case models.IntentAddExpense:
		return w.respondAddExpense(ctx, user.ID, state.TransactionData)
	case models.IntentCheckBalance:
		return w.respondBalance(ctx, user.ID)
	case models.IntentGetReport:
		return w.respondReport(ctx, user.ID)
	default:
		return fmt.Sprintf("Olá! Você disse: '%s'", state.UserInput), nil
	}
}

func (w *Workflow) respondAddExpense(ctx context.Context, userID string, data *models.ExtractedTransaction) (string, error) {
	if data == nil {
		return "Entendi que você gastou algo, mas não consegui identificar os detalhes. Pode repetir com o valor?", nil
	}

	tx, err := w.storage.CreateTransaction(ctx, userID, data.Amount, data.Category, data.Description)
	if err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}

	return fmt.Sprintf("💰 Despesa registrada: %s - R$ %.2f (%s)",
		tx.Description, tx.Amount, tx.Category), nil
}

func (w *Workflow) respondBalance(ctx context.Context, userID string) (string, error) {
	balance, err := w.storage.GetUserBalance(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get balance: %w", err)
	}

	return fmt.Sprintf("💳 Seu saldo atual é R$ %.2f", balance), nil
}

func (w *Workflow) respondReport(ctx context.Context, userID string) (string, error) {
	transactions, err := w.storage.GetUserTransactions(ctx, userID, w.reportLimit)
	if err != nil {
		return "", fmt.Errorf("get transactions: %w", err)
	}

	if len(transactions) == 0 {
		return "📊 Você ainda não tem transações registradas.", nil
	}

	var b strings.Builder
	b.WriteString("📊 Suas últimas transações:\n")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "- R$ %.2f (%s) em %02d/%02d\n",
			tx.Amount, tx.Category, tx.Date.Day(), int(tx.Date.Month()))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
