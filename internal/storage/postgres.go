package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/gfranca/finbot/internal/models"
	_ "github.com/lib/pq"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetOrCreateUser(ctx context.Context, id string) (*models.User, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, id)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	user := &models.User{}
	var name sql.NullString
	err = s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM users WHERE id = $1`, id).
		Scan(&user.ID, &name, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	user.Name = name.String

	return user, nil
}

func (s *PostgresStorage) CreateTransaction(ctx context.Context, userID string, amount float64, category, description string) (*models.Transaction, error) {
	tx := &models.Transaction{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO transactions (user_id, amount, category, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, date`,
		userID, amount, category, nullable(description)).
		Scan(&tx.ID, &tx.Date)
	if err != nil {
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}

	return tx, nil
}

func (s *PostgresStorage) GetUserBalance(ctx context.Context, userID string) (float64, error) {
	var balance float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`, userID).
		Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("error querying balance: %w", err)
	}
	return balance, nil
}

func (s *PostgresStorage) GetUserTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, amount, category, description, date
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY date DESC, id DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var description sql.NullString
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Category, &description, &tx.Date)
		if err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		tx.Description = description.String
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (s *PostgresStorage) SaveConversation(ctx context.Context, userID, message, response, intent string) (*models.Conversation, error) {
	conv := &models.Conversation{
		UserID:   userID,
		Message:  message,
		Response: response,
		Intent:   intent,
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO conversations (user_id, message, response, intent)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, timestamp`,
		userID, message, response, nullable(intent)).
		Scan(&conv.ID, &conv.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("error saving conversation: %w", err)
	}

	return conv, nil
}

func (s *PostgresStorage) GetUserConversationHistory(ctx context.Context, userID string, limit int) ([]models.Conversation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, message, response, intent, timestamp
		 FROM conversations
		 WHERE user_id = $1
		 ORDER BY timestamp DESC, id DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying conversation history: %w", err)
	}
	defer rows.Close()

	var conversations []models.Conversation
	for rows.Next() {
		var conv models.Conversation
		var intent sql.NullString
		err := rows.Scan(&conv.ID, &conv.UserID, &conv.Message, &conv.Response, &intent, &conv.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		conv.Intent = intent.String
		conversations = append(conversations, conv)
	}

	return conversations, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
