package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"securechat/internal/common"
	"securechat/internal/models"
)

// Users prints every other registered account.
func (a *App) Users(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	userID, err := a.currentUserID()
	if err != nil {
		log.Printf("Session invalid, please log in again: %s", err.Error())
		return a.Logout(ctx)
	}

	list, err := a.accounts.ListOthers(ctx, userID)
	if err != nil {
		log.Printf("Could not list users: %s", err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No other users yet")
		return nil
	}
	for _, u := range list {
		fmt.Printf("  %s\n", u.Username)
	}
	return nil
}

// Chat opens the conversation with the named peer: it prints the decrypted
// history, then reads lines to send until an empty line.
func (a *App) Chat(ctx context.Context, peer string) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	userID, err := a.currentUserID()
	if err != nil {
		log.Printf("Session invalid, please log in again: %s", err.Error())
		return a.Logout(ctx)
	}

	if peer == "" {
		peer, err = getSimpleText(a.reader, "Chat with", os.Stdout)
		if err != nil {
			return err
		}
	}

	account, err := a.accounts.Lookup(ctx, peer)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Printf("No such user: %s\n", peer)
			return nil
		}
		log.Printf("Could not resolve %s: %s", peer, err.Error())
		return err
	}

	history, err := a.messages.Conversation(ctx, userID, account.ID, a.key)
	if err != nil {
		log.Printf("Could not load conversation: %s", err.Error())
		return err
	}
	a.printConversation(history, userID, account.Username)

	// input loop: every non-empty line is sent, an empty line leaves the chat
	for {
		line, err := getSimpleText(a.reader, "", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		if _, err := a.messages.Send(ctx, userID, account.ID, line, a.key); err != nil {
			log.Printf("Message not sent: %s", err.Error())
			return err
		}
	}
}

func (a *App) printConversation(history []models.DecryptedMessage, userID int64, peerName string) {
	if len(history) == 0 {
		fmt.Println("No messages yet")
		return
	}
	for _, m := range history {
		name := peerName
		if m.SenderID == userID {
			name = "you"
		}
		text := m.Text
		if m.Err != nil {
			text = "[message unreadable]"
		}
		fmt.Printf("[%s] %s: %s\n", m.SentAt.Local().Format("2006-01-02 15:04"), name, text)
	}
}
