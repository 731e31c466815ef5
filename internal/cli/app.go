// Package cli implements the interactive terminal client: the presentation
// layer that collects credentials and message text and renders decrypted
// conversations. All messaging logic lives in the services it calls.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"securechat/internal/config"
	"securechat/internal/logging"
	"securechat/internal/models"
	"securechat/internal/passhash"
	"securechat/internal/repositories/repomanager"
	"securechat/internal/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	accounts *services.AccountService
	messages *services.MessageService

	db  *sql.DB
	key []byte

	// session state, set by Login and cleared by Logout
	account *models.Account
	token   string

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	sl := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	key, err := c.MessageKeyBytes()
	if err != nil {
		return nil, err
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "store ready", "driver", c.DatabaseDriver)

	hasher := passhash.New(c.HashIterations)
	as := services.NewAccountService(db, rm, hasher, c)
	ms := services.NewMessageService(db, rm, logger)

	return &App{
		config:   c,
		logger:   logger,
		accounts: as,
		messages: ms,
		db:       db,
		key:      key,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// currentUserID re-derives the logged-in account id from the session token
// rather than trusting mutable session state.
func (a *App) currentUserID() (int64, error) {
	return a.accounts.CurrentUserID(a.token)
}
