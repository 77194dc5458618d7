package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	kanoclient "github.com/kano-labs/kano-api-client"
	"github.com/kano-labs/kano-api-client/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates a new
// account. A successful registration leaves the user logged in, so the
// resulting user id is printed. The password byte slice is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	created, err := a.api.Create(ctx, kanoclient.CreateRequest{
		Username: userName,
		Email:    email,
		Password: string(password),
		Populate: map[string]string{"id": "user.id"},
	})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! Your user id:", created["id"])
	return nil
}

// Login prompts the user for credentials and authenticates. The client tries
// the server first and falls back to the offline session cache when the
// server cannot be reached; both outcomes land here as a session or an
// error. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	sess, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful, user id %s", sess.UserID)
	return nil
}

// Logout ends the in-memory session. The encrypted offline copy is kept so
// the same user can log back in without a network connection.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// ClearCache removes the stored offline session for a username. Unlike
// Logout this makes offline login impossible until the next online login.
func (a *App) ClearCache(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username to forget", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.ClearOfflineSession(ctx, userName); err != nil {
		log.Printf("Could not clear offline session: %s", err.Error())
		return err
	}

	fmt.Println("Offline session cleared.")
	return nil
}
