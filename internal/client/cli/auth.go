package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new account.
func (a *App) Register(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return
	}

	fmt.Printf("Created account %s (%s)\n", user.Email, user.ID)
}

// Login prompts for credentials, exchanges them for a session token, and
// caches the token for later runs.
func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	token, err := a.api.Connect(ctx, email, password)
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return
	}

	if err := saveToken(a.config.TokenFile, token); err != nil {
		log.Printf("could not cache session token: %v", err)
	}
	log.Printf("Login successfull")
}

// Logout revokes the session on the server and drops the cached token. The
// local cache is cleared even when the server call fails.
func (a *App) Logout(ctx context.Context) {
	if err := a.api.Disconnect(ctx); err != nil {
		log.Printf("%v", err)
	}
	a.api.SetToken("")
	if err := clearToken(a.config.TokenFile); err != nil {
		log.Printf("could not clear cached token: %v", err)
	}
	log.Printf("Logged out")
}

// WhoAmI prints the account bound to the current session.
func (a *App) WhoAmI(ctx context.Context) {
	user, err := a.api.Me(ctx)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	fmt.Printf("%s (%s)\n", user.Email, user.ID)
}
