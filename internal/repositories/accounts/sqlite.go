package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"securechat/internal/common"
	"securechat/internal/dbx"
	"securechat/internal/models"
)

// SQLiteRepository implements account storage for the embedded backend.
// Timestamps are stored as microsecond Unix integers and assigned at insert;
// in embedded mode the process is the store.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (username, password_hash, salt, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING user_id
	`

	createdAt := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		account.Username, account.PasswordHash, account.Salt, createdAt.UnixMicro()).Scan(&account.ID)

	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return nil, common.ErrorDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.CreatedAt = createdAt
	return account, nil
}

func (r *SQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `
		SELECT user_id, username, password_hash, salt, created_at FROM accounts
		WHERE username = ?
	`

	account := &models.Account{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Salt, &createdAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.CreatedAt = time.UnixMicro(createdAt).UTC()
	return account, nil
}

func (r *SQLiteRepository) ListOthers(ctx context.Context, excludingID int64) ([]*models.Account, error) {
	query := `
		SELECT user_id, username, created_at FROM accounts
		WHERE user_id <> ?
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
		var createdAt int64
		if err := rows.Scan(&item.ID, &item.Username, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = time.UnixMicro(createdAt).UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
