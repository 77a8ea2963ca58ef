// Package services contains the client workflows: certificate issuance,
// verification, and dashboard loading. Each workflow composes a form, a
// single-flight call, the API client, and the notifier, and emits exactly
// one user notification per terminal outcome.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/auth"
	"github.com/certvera/certvera/internal/client/flight"
	"github.com/certvera/certvera/internal/client/forms"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/common"
	"github.com/certvera/certvera/internal/logging"
)

// IssueState is the issuance workflow lifecycle.
type IssueState int

const (
	IssueIdle IssueState = iota
	IssueValidating
	IssueSubmitting
	IssueIssued
	IssueFailed
)

// backendMessage extracts the backend's error-envelope message, falling back
// to the given generic message when none is present.
func backendMessage(err error, fallback string) string {
	var be *api.BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}

// IssueService drives the certificate issuance workflow:
// Idle -> Validating -> Submitting -> {Issued | Failed} -> Idle.
type IssueService struct {
	client   api.Client
	tokens   auth.TokenProvider
	notifier notify.Notifier
	log      logging.Logger

	mu    sync.Mutex
	form  forms.Form
	state IssueState
	last  *models.IssuedCertificateRef

	call flight.Call[models.IssuedCertificateRef]
}

func NewIssueService(client api.Client, tokens auth.TokenProvider, notifier notify.Notifier, log logging.Logger, variant forms.Variant) *IssueService {
	return &IssueService{
		client:   client,
		tokens:   tokens,
		notifier: notifier,
		log:      log.With("workflow", "issue"),
		form:     forms.NewIssueForm(variant),
	}
}

// UpdateField applies one field-change event to the draft. An unknown field
// name is a configuration error and is returned, never swallowed.
func (s *IssueService) UpdateField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated, err := s.form.Update(field, value)
	if err != nil {
		return err
	}
	s.form = updated
	return nil
}

// UseVariant switches the form variant, keeping the entered values. A draft
// started on the public form can be re-submitted through the dashboard form
// without retyping anything but the matric number.
func (s *IssueService) UseVariant(v forms.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = s.form.WithVariant(v)
}

// AttachLogo attaches logo bytes to the draft.
func (s *IssueService) AttachLogo(data []byte, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = s.form.AttachLogo(data, name)
}

// Draft returns the current draft values.
func (s *IssueService) Draft() models.CertificateDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Draft()
}

// State returns the current lifecycle state.
func (s *IssueService) State() IssueState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastIssued returns the reference created by the most recent successful
// submission, if any.
func (s *IssueService) LastIssued() (models.IssuedCertificateRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return models.IssuedCertificateRef{}, false
	}
	return *s.last, true
}

func (s *IssueService) fail(message string) {
	s.mu.Lock()
	s.state = IssueFailed
	s.mu.Unlock()
	s.notifier.Notify(notify.Notification{
		Title:   "Error",
		Message: message,
		Variant: notify.Destructive,
	})
}

// Submit validates the draft and, when complete, posts it to the issuance
// endpoint. Validation and auth failures never reach the network. On
// success the draft is reset to empty (logo back to the placeholder); on
// failure it is retained so the user can retry without re-entering data.
func (s *IssueService) Submit(ctx context.Context) error {
	if s.call.Status() == flight.StatusLoading {
		return flight.ErrInFlight
	}

	s.mu.Lock()
	s.state = IssueValidating
	form := s.form
	s.mu.Unlock()

	if field, missing := form.MissingField(); missing {
		message := fmt.Sprintf("Please fill in the %s", forms.FieldLabel(field))
		s.fail(message)
		return fmt.Errorf("%w: %s", common.ErrValidation, message)
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.fail(common.ErrNoAuthToken.Error())
		return err
	}
	if err := auth.CheckExpiry(token); err != nil {
		s.fail("Session expired, please sign up again")
		return err
	}

	s.mu.Lock()
	s.state = IssueSubmitting
	s.mu.Unlock()

	draft := form.Draft()
	result, err := s.call.Run(ctx, func(ctx context.Context) (models.IssuedCertificateRef, error) {
		return s.client.Issue(ctx, &draft)
	})
	if err != nil {
		// A submission is already in flight; it will settle on its own.
		return err
	}

	if info := result.Err(); info != nil {
		s.log.Warn(ctx, "issue failed", "error", info.Message)
		s.fail(backendMessage(info.Cause, "Failed to issue certificate."))
		return info.Cause
	}

	ref := result.Data()
	s.log.Info(ctx, "certificate issued", "id", ref.CertificateID)

	s.mu.Lock()
	s.state = IssueIssued
	s.last = &ref
	s.form = s.form.Reset()
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Title:   "Certificate Issued",
		Message: fmt.Sprintf("Certificate created with ID: %s", ref.CertificateID),
	})
	return nil
}
