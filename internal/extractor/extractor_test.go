package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gfranca/finbot/internal/gateway"
	"github.com/gfranca/finbot/internal/models"
	"go.uber.org/zap"
)

type fakeGateway struct {
	payload string
	err     error
}

func (f *fakeGateway) Complete(context.Context, string) (string, error) {
	return f.payload, f.err
}

func (f *fakeGateway) ExtractStructured(_ context.Context, _ string, out any) error {
	if f.err != nil {
		return f.err
	}
	if err := json.Unmarshal([]byte(gateway.StripFences(f.payload)), out); err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrMalformed, err)
	}
	return nil
}

func TestFallback(t *testing.T) {
	inputs := []string{"", "gastei 50 reais no almoço", "qualquer coisa"}
	for _, input := range inputs {
		got := Fallback(input)
		if got.Amount != 0.0 {
			t.Errorf("Fallback(%q).Amount = %v, want 0.0", input, got.Amount)
		}
		if got.Category != models.DefaultCategory {
			t.Errorf("Fallback(%q).Category = %q, want %q", input, got.Category, models.DefaultCategory)
		}
		if got.Description != input {
			t.Errorf("Fallback(%q).Description = %q, want verbatim input", input, got.Description)
		}
	}
}

func TestLLMExtractor(t *testing.T) {
	down := fmt.Errorf("%w: timeout", gateway.ErrUnavailable)

	tests := []struct {
		name    string
		gw      *fakeGateway
		message string
		want    models.ExtractedTransaction
	}{
		{
			"happy path",
			&fakeGateway{payload: `{"amount": 50.0, "category": "alimentação", "description": "almoço"}`},
			"gastei 50 reais no almoço",
			models.ExtractedTransaction{Amount: 50.0, Category: "alimentação", Description: "almoço"},
		},
		{
			"fenced payload",
			&fakeGateway{payload: "```json\n{\"amount\": 35.9, \"category\": \"vestuário\", \"description\": \"camiseta\"}\n```"},
			"comprei uma camiseta por 35,90",
			models.ExtractedTransaction{Amount: 35.9, Category: "vestuário", Description: "camiseta"},
		},
		{
			"gateway down yields defaults",
			&fakeGateway{err: down},
			"gastei 50 reais no almoço",
			models.ExtractedTransaction{Amount: 0.0, Category: "outros", Description: "gastei 50 reais no almoço"},
		},
		{
			"malformed payload yields defaults",
			&fakeGateway{payload: "sure! here's the JSON you asked for"},
			"paguei 10",
			models.ExtractedTransaction{Amount: 0.0, Category: "outros", Description: "paguei 10"},
		},
		{
			"missing fields get defaults",
			&fakeGateway{payload: `{"amount": 12.5}`},
			"gastei 12,50",
			models.ExtractedTransaction{Amount: 12.5, Category: "outros", Description: "gastei 12,50"},
		},
		{
			"negative amount floored",
			&fakeGateway{payload: `{"amount": -7.0, "category": "lazer", "description": "cinema"}`},
			"cinema",
			models.ExtractedTransaction{Amount: 0.0, Category: "lazer", Description: "cinema"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := NewLLMExtractor(tt.gw, zap.NewNop())
			got := ext.ExtractTransaction(context.Background(), tt.message)
			if got != tt.want {
				t.Errorf("ExtractTransaction(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}
