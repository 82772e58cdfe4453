package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"trading-journal/internal/errors"
	"trading-journal/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Accounts table
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		starting_balance REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Trades table. account_id is intentionally not a foreign key: removing
	-- an account leaves its trades orphaned, and analytics tolerate that.
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		date DATETIME NOT NULL,
		symbol TEXT NOT NULL,
		direction TEXT NOT NULL,
		entry_price REAL NOT NULL,
		stop_loss REAL NOT NULL,
		take_profit REAL,
		exit_price REAL NOT NULL,
		outcome TEXT NOT NULL,
		r_multiple REAL NOT NULL,
		risk_percent REAL NOT NULL,
		risk_amount REAL NOT NULL,
		reward_amount REAL NOT NULL,
		session TEXT NOT NULL,
		setup TEXT,
		emotion TEXT NOT NULL,
		discipline INTEGER,
		notes TEXT,
		screenshot TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id);
	CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const tradeColumns = `id, account_id, date, symbol, direction, entry_price, stop_loss,
	take_profit, exit_price, outcome, r_multiple, risk_percent, risk_amount,
	reward_amount, session, setup, emotion, discipline, notes, screenshot`

// SaveTrade saves a trade to the database.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO trades (`+tradeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trade.ID, trade.AccountID, trade.Date, trade.Symbol, trade.Direction,
		trade.EntryPrice, trade.StopLoss, trade.TakeProfit, trade.ExitPrice,
		trade.Outcome, trade.RMultiple, trade.RiskPercent, trade.RiskAmount,
		trade.RewardAmount, trade.Session, trade.Setup, trade.Emotion,
		trade.Discipline, trade.Notes, trade.Screenshot)
	if err != nil {
		return errors.NewStoreError("trade", "save", err)
	}
	return nil
}

// GetTrade retrieves a single trade by ID.
func (s *SQLiteStore) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+tradeColumns+` FROM trades WHERE id = ?
	`, id)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTradeNotFound
	}
	if err != nil {
		return nil, errors.NewStoreError("trade", "get", err)
	}
	return t, nil
}

// GetTrades retrieves trades from the database, most recent first.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error) {
	query := "SELECT " + tradeColumns + " FROM trades WHERE 1=1"
	args := []interface{}{}

	if filter.AccountID != "" {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.Symbol != "" {
		query += " AND symbol = ?"
		args = append(args, filter.Symbol)
	}
	if filter.Session != "" {
		query += " AND session = ?"
		args = append(args, filter.Session)
	}
	if filter.Setup != "" {
		query += " AND setup = ?"
		args = append(args, filter.Setup)
	}
	if !filter.StartDate.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND date <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("trade", "query", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, errors.NewStoreError("trade", "scan", err)
		}
		trades = append(trades, *t)
	}

	return trades, rows.Err()
}

// DeleteTrade removes a trade by ID.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return errors.NewStoreError("trade", "delete", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrTradeNotFound
	}
	return nil
}

// SaveAccount saves an account to the database.
func (s *SQLiteStore) SaveAccount(ctx context.Context, account *models.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO accounts (id, name, starting_balance, created_at)
		VALUES (?, ?, ?, ?)
	`, account.ID, account.Name, account.StartingBalance, account.CreatedAt)
	if err != nil {
		return errors.NewStoreError("account", "save", err)
	}
	return nil
}

// GetAccount retrieves an account by ID.
func (s *SQLiteStore) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	var a models.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, starting_balance, created_at FROM accounts WHERE id = ?
	`, id).Scan(&a.ID, &a.Name, &a.StartingBalance, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.NewStoreError("account", "get", err)
	}
	return &a, nil
}

// GetAccounts retrieves all accounts, oldest first.
func (s *SQLiteStore) GetAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, starting_balance, created_at FROM accounts ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, errors.NewStoreError("account", "query", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.StartingBalance, &a.CreatedAt); err != nil {
			return nil, errors.NewStoreError("account", "scan", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

// DeleteAccount removes an account by ID. Trades referencing the account are
// kept; their account reference becomes orphaned.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return errors.NewStoreError("account", "delete", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return errors.ErrAccountNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrade(row rowScanner) (*models.Trade, error) {
	var t models.Trade
	err := row.Scan(&t.ID, &t.AccountID, &t.Date, &t.Symbol, &t.Direction,
		&t.EntryPrice, &t.StopLoss, &t.TakeProfit, &t.ExitPrice, &t.Outcome,
		&t.RMultiple, &t.RiskPercent, &t.RiskAmount, &t.RewardAmount,
		&t.Session, &t.Setup, &t.Emotion, &t.Discipline, &t.Notes, &t.Screenshot)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
