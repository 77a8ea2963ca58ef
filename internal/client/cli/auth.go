package cli

import (
	"context"
	"errors"
	"os"

	"github.com/certvera/certvera/internal/common"
	"github.com/certvera/certvera/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for an email, a password, and the admin flag, creates the
// account, and stores the returned token. The password byte slice is wiped
// before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	isAdmin, err := GetYesNo(a.reader, "Request admin access?", os.Stdout)
	if err != nil {
		return err
	}

	return a.account.Signup(ctx, email, string(password), isAdmin)
}

// Login checks the stored session token and reports its state. There is no
// login endpoint on the backend; a token is obtained via signup.
func (a *App) Login(ctx context.Context) error {
	err := a.account.SessionCheck(ctx)
	switch {
	case err == nil:
		printlnFn("Session token is present and usable.")
	case errors.Is(err, common.ErrNoAuthToken):
		printlnFn("No session token stored. Run 'signup' first.")
	case errors.Is(err, common.ErrTokenExpired):
		printlnFn("Session token has expired. Run 'signup' again.")
	default:
		printlnFn("Session check failed:", err.Error())
	}
	return err
}

// Logout discards the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.account.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Signed out.")
	return nil
}
