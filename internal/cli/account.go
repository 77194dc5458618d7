package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Check prompts for a lookup query such as "users.marcus7777" and reports
// whether the entity exists on the server.
func (a *App) Check(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Enter query (namespace.name, e.g. users.alice)", os.Stdout)
	if err != nil {
		return err
	}

	exists, err := a.api.Check(ctx, query)
	if err != nil {
		log.Printf("Check unsuccessful: %s", err.Error())
		return err
	}

	if exists {
		fmt.Println("Exists.")
	} else {
		fmt.Println("Does not exist.")
	}
	return nil
}

// ForgotUsername asks the server to mail the username for an email address.
func (a *App) ForgotUsername(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.ForgotUsername(ctx, email); err != nil {
		log.Printf("Request unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("If the address is registered, a reminder is on its way.")
	return nil
}

// ForgotPassword asks the server to start a password reset for a username.
func (a *App) ForgotPassword(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.ForgotPassword(ctx, userName); err != nil {
		log.Printf("Request unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("If the username exists, a reset link is on its way.")
	return nil
}

// Whoami prints the current session details.
func (a *App) Whoami(ctx context.Context) error {
	sess, ok := a.api.Session()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("Username: %s\nUser id:  %s\nRoles:    %v\n", sess.Username, sess.UserID, sess.Roles)
	return nil
}
