package services

import (
	"context"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/auth"
	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/logging"
)

// AccountService owns the token lifecycle on the client: signup stores the
// backend-issued token, SessionCheck gates authenticated workflows, Logout
// clears the store. It is the only writer of the token.
type AccountService struct {
	client   api.Client
	tokens   auth.TokenProvider
	notifier notify.Notifier
	log      logging.Logger
}

func NewAccountService(client api.Client, tokens auth.TokenProvider, notifier notify.Notifier, log logging.Logger) *AccountService {
	return &AccountService{
		client:   client,
		tokens:   tokens,
		notifier: notifier,
		log:      log.With("workflow", "account"),
	}
}

// Signup creates an account and stores the returned bearer token.
func (s *AccountService) Signup(ctx context.Context, email, password string, isAdmin bool) error {
	token, err := s.client.Signup(ctx, email, password, isAdmin)
	if err != nil {
		s.notifier.Notify(notify.Notification{
			Title:   "Error",
			Message: backendMessage(err, "Failed to sign up"),
			Variant: notify.Destructive,
		})
		return err
	}

	if err := s.tokens.Save(ctx, token); err != nil {
		s.notifier.Notify(notify.Notification{
			Title:   "Error",
			Message: "Failed to store authentication token",
			Variant: notify.Destructive,
		})
		return err
	}

	s.log.Info(ctx, "signed up", "email", email)
	s.notifier.Notify(notify.Notification{
		Title:   "Account Created",
		Message: "You are signed in",
	})
	return nil
}

// SessionCheck reports whether a usable token is stored: present and, when
// it is a JWT, not expired.
func (s *AccountService) SessionCheck(ctx context.Context) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}
	return auth.CheckExpiry(token)
}

// Logout removes the stored token.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.tokens.Clear(ctx)
}
