// Package services contains the business logic of the messaging core.
// This file implements AccountService: the account directory that registers
// users, verifies logins, and lists conversation partners.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"securechat/internal/auth"
	"securechat/internal/common"
	"securechat/internal/config"
	"securechat/internal/models"
	"securechat/internal/passhash"
	"securechat/internal/repositories/repomanager"
)

// AccountService provides account-related operations:
// - Register: create accounts with salted password digests
// - Authenticate / Login: verify credentials (and mint a session token)
// - ListOthers / Lookup: directory queries for the presentation layer
type AccountService struct {
	db                   *sql.DB
	repomanager          repomanager.RepositoryManager
	hasher               passhash.Hasher
	secretKey            []byte
	sessionTokenValidity time.Duration
}

// NewAccountService constructs an AccountService using repositories and config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, h passhash.Hasher, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                   db,
		repomanager:          m,
		hasher:               h,
		secretKey:            []byte(cfg.SecretKey),
		sessionTokenValidity: cfg.SessionTokenValidity,
	}
}

// Register creates a new account: a fresh salt, the password digest and one
// inserted row. A taken username yields common.ErrorDuplicateUsername; the
// existing row is never altered.
func (s *AccountService) Register(ctx context.Context, username, password string) (*models.Account, error) {
	salt, err := passhash.GenerateSalt()
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:     username,
		PasswordHash: s.hasher.Hash(password, salt),
		Salt:         salt,
	}

	repo := s.repomanager.Accounts(s.db)
	created, err := repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}
	return created, nil
}

// Authenticate looks the account up by username, recomputes the digest with
// the stored salt and compares in constant time. An unknown username and a
// wrong password return the same common.ErrorInvalidCredentials; store
// failures surface as errors in their own right.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn a hash so a missing account costs the same as a mismatch
			s.hasher.Hash(password, username)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	digest := s.hasher.Hash(password, account.Salt)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(account.PasswordHash)) != 1 {
		return nil, common.ErrorInvalidCredentials
	}

	return account, nil
}

// Login verifies credentials via Authenticate and, on success, mints a
// session token the client holds for the remainder of the session.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.Account, string, error) {
	account, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(account.ID, s.secretKey, s.sessionTokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return account, token, nil
}

// CurrentUserID returns the account id a session token was issued for.
func (s *AccountService) CurrentUserID(token string) (int64, error) {
	return auth.GetUserIDFromToken(token, s.secretKey)
}

// ListOthers returns every account except the given one, with credential
// fields left empty.
func (s *AccountService) ListOthers(ctx context.Context, excludingID int64) ([]*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)
	list, err := repo.ListOthers(ctx, excludingID)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	return list, nil
}

// Lookup resolves a username to its account for peer selection. Credential
// fields are stripped before returning.
func (s *AccountService) Lookup(ctx context.Context, username string) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}
	return &models.Account{ID: account.ID, Username: account.Username, CreatedAt: account.CreatedAt}, nil
}
