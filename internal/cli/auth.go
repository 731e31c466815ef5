package cli

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"os"

	"securechat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and a password (entered twice) and creates
// a new account. Password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		fmt.Println("Username must not be empty")
		return nil
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if len(password) == 0 {
		fmt.Println("Password must not be empty")
		return nil
	}
	if subtle.ConstantTimeCompare(password, confirm) != 1 {
		fmt.Println("Passwords do not match")
		return nil
	}

	if _, err := a.accounts.Register(ctx, username, string(password)); err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			fmt.Println("That username is already taken")
			return nil
		}
		log.Printf("Registration failed: %s", err.Error())
		return err
	}

	fmt.Println("Account created. You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates. On success it stores the
// account and session token; the password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, token, err := a.accounts.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Invalid username or password")
			return nil
		}
		log.Printf("Login failed: %s", err.Error())
		return err
	}

	a.account = account
	a.token = token
	fmt.Printf("Welcome, %s!\n", account.Username)
	return nil
}

// Logout discards the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.account = nil
	a.token = ""
	fmt.Println("Logged out")
	return nil
}
