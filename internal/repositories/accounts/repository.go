// Package accounts provides persistence for registered user accounts.
package accounts

import (
	"context"

	"securechat/internal/models"
)

type Repository interface {
	// Create inserts a new account and fills in the store-assigned fields.
	// A username collision yields common.ErrorDuplicateUsername.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// FindByUsername returns the full credential record for a username,
	// or common.ErrorNotFound.
	FindByUsername(ctx context.Context, username string) (*models.Account, error)

	// ListOthers returns every account except the given id, ordered by id.
	ListOthers(ctx context.Context, excludingID int64) ([]*models.Account, error)
}
