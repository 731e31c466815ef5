package models

import "time"

// Message is a single directional message between two accounts as stored.
// CiphertextPayload is base64(IV ‖ AES-CBC ciphertext) and is the only value
// needed to recover the text; SentAt is assigned by the store and is the
// sole ordering key (ties broken by ID).
type Message struct {
	ID                int64
	SenderID          int64
	ReceiverID        int64
	CiphertextPayload string
	SentAt            time.Time
}

// DecryptedMessage is one conversation item after decryption. A row whose
// payload could not be decrypted carries a non-nil Err and an empty Text;
// the rest of the conversation is unaffected.
type DecryptedMessage struct {
	ID       int64
	SenderID int64
	Text     string
	SentAt   time.Time
	Err      error
}
