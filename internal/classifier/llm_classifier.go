package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfranca/finbot/internal/gateway"
	"github.com/gfranca/finbot/internal/models"
	"go.uber.org/zap"
)

// LLMClassifier asks the language model for the intent label and falls back
// to keyword matching when the gateway is unavailable.
type LLMClassifier struct {
	gateway  gateway.Client
	fallback *KeywordClassifier
	logger   *zap.Logger
}

func NewLLMClassifier(gw gateway.Client, logger *zap.Logger) *LLMClassifier {
	return &LLMClassifier{
		gateway:  gw,
		fallback: NewKeywordClassifier(),
		logger:   logger,
	}
}

func (c *LLMClassifier) ClassifyIntent(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(`Classifique a intenção da mensagem do usuário em exatamente um dos rótulos abaixo.
Responda somente com o rótulo, sem pontuação ou explicação.

- add_expense: o usuário relata um gasto ou compra ("gastei 50 reais no almoço", "comprei um tênis", "paguei a conta de luz")
- check_balance: o usuário pergunta quanto dinheiro tem ("qual meu saldo?", "quanto eu tenho?")
- get_report: o usuário pede um resumo ou histórico ("me mostra o relatório", "resumo dos meus gastos")
- chat: qualquer outra coisa (saudações, perguntas gerais, conversa)

Mensagem: %s`, message)

	label, err := c.gateway.Complete(ctx, prompt)
	if err != nil {
		c.logger.Warn("Intent classification via model failed, using keyword fallback",
			zap.Error(err))
		return c.fallback.ClassifyIntent(ctx, message)
	}

	label = strings.TrimSpace(label)
	if !models.KnownIntent(label) {
		// The model reply is used verbatim as the label; an off-vocabulary
		// value lands in the responder's default branch.
		c.logger.Warn("Model returned unknown intent label",
			zap.String("label", label))
	}
	return label
}
