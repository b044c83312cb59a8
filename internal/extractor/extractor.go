package extractor

import (
	"context"
	"fmt"

	"github.com/gfranca/finbot/internal/gateway"
	"github.com/gfranca/finbot/internal/models"
	"go.uber.org/zap"
)

// Extractor pulls a structured expense record out of a free-text message.
// It runs for every message regardless of intent; the responder decides
// whether the record is used.
type Extractor interface {
	ExtractTransaction(ctx context.Context, message string) models.ExtractedTransaction
}

// LLMExtractor asks the language model for the record and substitutes
// defaults for anything it cannot get.
type LLMExtractor struct {
	gateway gateway.Client
	logger  *zap.Logger
}

func NewLLMExtractor(gw gateway.Client, logger *zap.Logger) *LLMExtractor {
	return &LLMExtractor{gateway: gw, logger: logger}
}

// extractionPayload tolerates missing fields so defaults can be applied
// per field rather than wholesale.
type extractionPayload struct {
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

func (e *LLMExtractor) ExtractTransaction(ctx context.Context, message string) models.ExtractedTransaction {
	prompt := fmt.Sprintf(`Extraia os dados da transação financeira descrita na mensagem abaixo.
Responda somente com um objeto JSON neste formato:
{"amount": 0.0, "category": "outros", "description": "..."}

Regras:
- amount: valor gasto em reais, número, 0.0 se não houver valor na mensagem
- category: exatamente uma de alimentação, transporte, saúde, educação, lazer, utilidades, vestuário, outros
- description: descrição curta do gasto

Exemplos:
"gastei 50 reais no almoço" -> {"amount": 50.0, "category": "alimentação", "description": "almoço"}
"paguei 120 de uber essa semana" -> {"amount": 120.0, "category": "transporte", "description": "uber"}
"comprei uma camiseta por 35,90" -> {"amount": 35.90, "category": "vestuário", "description": "camiseta"}

Mensagem: %s`, message)

	var payload extractionPayload
	if err := e.gateway.ExtractStructured(ctx, prompt, &payload); err != nil {
		e.logger.Warn("Transaction extraction via model failed, using defaults",
			zap.Error(err))
		return Fallback(message)
	}

	record := Fallback(message)
	if payload.Amount != nil && *payload.Amount > 0 {
		record.Amount = *payload.Amount
	}
	if payload.Category != "" {
		record.Category = payload.Category
	}
	if payload.Description != "" {
		record.Description = payload.Description
	}
	return record
}

// Fallback is the all-defaults record: zero amount, "outros" category and
// the verbatim input as description.
func Fallback(message string) models.ExtractedTransaction {
	return models.ExtractedTransaction{
		Amount:      0.0,
		Category:    models.DefaultCategory,
		Description: message,
	}
}
