package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"securechat/internal/common"
	"securechat/internal/dbx"
	"securechat/internal/models"
)

// PostgresRepository implements account storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (username, password_hash, salt)
		VALUES ($1, $2, $3)
		RETURNING user_id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.PasswordHash, account.Salt).Scan(&account.ID, &account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation (the accounts.username constraint)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT user_id, username, password_hash, salt, created_at FROM accounts
		WHERE username = $1
	`

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Salt, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) ListOthers(ctx context.Context, excludingID int64) ([]*models.Account, error) {
	query := `
		SELECT user_id, username, created_at FROM accounts
		WHERE user_id <> $1
		ORDER BY user_id
	`

	rows, err := r.db.QueryContext(ctx, query, excludingID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		item := &models.Account{}
		if err := rows.Scan(&item.ID, &item.Username, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
