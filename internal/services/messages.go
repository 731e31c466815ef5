// This file implements MessageService: the conversation ledger that encrypts
// and appends messages and retrieves two-party histories in send order.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"securechat/internal/cryptox"
	"securechat/internal/logging"
	"securechat/internal/models"
	"securechat/internal/repositories/repomanager"
)

// MessageService appends and retrieves encrypted messages. Key material is an
// explicit parameter on every operation so callers can supply per-deployment
// or per-conversation keys.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *MessageService {
	return &MessageService{db: db, repomanager: m, logger: logger}
}

// Send encrypts plaintext under key and persists one message row. The id and
// timestamp are assigned by the store; if an error is returned the message
// was not recorded.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID int64, plaintext string, key []byte) (*models.Message, error) {
	payload, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("error encrypting message: %w", err)
	}

	message := &models.Message{
		SenderID:          senderID,
		ReceiverID:        receiverID,
		CiphertextPayload: payload,
	}

	repo := s.repomanager.Messages(s.db)
	created, err := repo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("error saving message: %w", err)
	}
	return created, nil
}

// Conversation returns every message between the two accounts, in either
// direction, ordered ascending by send time (ties by message id), each
// decrypted under key.
//
// A row that fails to decrypt does not abort the retrieval: it is returned
// with Err set and logged, and the rest of the history is intact.
func (s *MessageService) Conversation(ctx context.Context, userA, userB int64, key []byte) ([]models.DecryptedMessage, error) {
	repo := s.repomanager.Messages(s.db)
	rows, err := repo.Conversation(ctx, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}

	result := make([]models.DecryptedMessage, 0, len(rows))
	for _, m := range rows {
		item := models.DecryptedMessage{ID: m.ID, SenderID: m.SenderID, SentAt: m.SentAt}

		text, err := cryptox.Decrypt(m.CiphertextPayload, key)
		if err != nil {
			s.logger.Warn(ctx, "message failed to decrypt", "message_id", m.ID, "error", err)
			item.Err = err
		} else {
			item.Text = text
		}
		result = append(result, item)
	}
	return result, nil
}
