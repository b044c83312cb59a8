package storage

import (
	"context"
	"math"
	"testing"
)

func TestMemoryGetOrCreateUserIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	first, err := store.GetOrCreateUser(ctx, "u1")
	if err != nil {
		t.Fatalf("first GetOrCreateUser: %v", err)
	}

	second, err := store.GetOrCreateUser(ctx, "u1")
	if err != nil {
		t.Fatalf("second GetOrCreateUser: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("ids differ: %q vs %q", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(second.CreatedAt) {
		t.Errorf("second call created a new row: %v vs %v", first.CreatedAt, second.CreatedAt)
	}
	if len(store.users) != 1 {
		t.Errorf("expected 1 user row, got %d", len(store.users))
	}
}

func TestMemoryBalanceIsSumOfAmounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	if _, err := store.GetOrCreateUser(ctx, "u1"); err != nil {
		t.Fatalf("GetOrCreateUser: %v", err)
	}

	for _, amount := range []float64{12.50, -3.00, 7.25} {
		if _, err := store.CreateTransaction(ctx, "u1", amount, "outros", ""); err != nil {
			t.Fatalf("CreateTransaction(%v): %v", amount, err)
		}
	}

	balance, err := store.GetUserBalance(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserBalance: %v", err)
	}
	if math.Abs(balance-16.75) > 1e-9 {
		t.Errorf("balance = %v, want 16.75", balance)
	}
}

func TestMemoryBalanceEmptyUser(t *testing.T) {
	store := NewMemoryStorage()
	balance, err := store.GetUserBalance(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetUserBalance: %v", err)
	}
	if balance != 0 {
		t.Errorf("balance = %v, want 0", balance)
	}
}

func TestMemoryTransactionsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for i, desc := range []string{"a", "b", "c"} {
		if _, err := store.CreateTransaction(ctx, "u1", float64(i), "outros", desc); err != nil {
			t.Fatalf("CreateTransaction: %v", err)
		}
	}

	got, err := store.GetUserTransactions(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("GetUserTransactions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	if got[0].Description != "c" || got[1].Description != "b" {
		t.Errorf("order = [%s, %s], want [c, b]", got[0].Description, got[1].Description)
	}
}

func TestMemoryConversationHistoryMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for _, msg := range []string{"A", "B", "C"} {
		if _, err := store.SaveConversation(ctx, "u1", msg, "resp-"+msg, "chat"); err != nil {
			t.Fatalf("SaveConversation: %v", err)
		}
	}

	got, err := store.GetUserConversationHistory(ctx, "u1", 3)
	if err != nil {
		t.Fatalf("GetUserConversationHistory: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	for i, want := range []string{"C", "B", "A"} {
		if got[i].Message != want {
			t.Errorf("got[%d].Message = %q, want %q", i, got[i].Message, want)
		}
	}
}

func TestMemoryHistoryLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	for _, msg := range []string{"A", "B", "C", "D"} {
		if _, err := store.SaveConversation(ctx, "u1", msg, "r", ""); err != nil {
			t.Fatalf("SaveConversation: %v", err)
		}
	}

	got, err := store.GetUserConversationHistory(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("GetUserConversationHistory: %v", err)
	}
	if len(got) != 2 || got[0].Message != "D" || got[1].Message != "C" {
		t.Errorf("limited history = %+v, want [D, C]", got)
	}
}
