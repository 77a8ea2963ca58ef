package services

import (
	"context"
	"strings"
	"sync"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/flight"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/logging"
)

// VerifyState is the verification workflow lifecycle.
type VerifyState int

const (
	VerifyIdle VerifyState = iota
	VerifyVerifying
	VerifyValid
	VerifyInvalid
)

// VerifyService drives the certificate verification workflow:
// Idle -> Verifying -> {Valid | Invalid} -> Idle. It holds at most one
// VerificationResult; a new attempt clears it before anything else happens.
type VerifyService struct {
	client   api.Client
	notifier notify.Notifier
	log      logging.Logger

	mu     sync.Mutex
	state  VerifyState
	result *models.VerificationResult

	call flight.Call[api.VerifyResponse]
}

func NewVerifyService(client api.Client, notifier notify.Notifier, log logging.Logger) *VerifyService {
	return &VerifyService{
		client:   client,
		notifier: notifier,
		log:      log.With("workflow", "verify"),
	}
}

// State returns the current lifecycle state.
func (s *VerifyService) State() VerifyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the outcome of the last settled attempt; ok is false while
// no attempt has settled yet (including mid-attempt, when the previous
// result has been blanked).
func (s *VerifyService) Result() (models.VerificationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return models.VerificationResult{}, false
	}
	return *s.result, true
}

func (s *VerifyService) settle(result models.VerificationResult, n notify.Notification) models.VerificationResult {
	s.mu.Lock()
	if result.Valid {
		s.state = VerifyValid
	} else {
		s.state = VerifyInvalid
	}
	s.result = &result
	s.mu.Unlock()
	s.notifier.Notify(n)
	return result
}

// Verify resolves a certificate hash to a verification result. A blank hash
// settles as Invalid without any network call. Each attempt replaces the
// previous result wholesale and emits exactly one notification whose tone
// matches the outcome.
func (s *VerifyService) Verify(ctx context.Context, hash string) (models.VerificationResult, error) {
	if s.call.Status() == flight.StatusLoading {
		return models.VerificationResult{}, flight.ErrInFlight
	}

	// Blank the previous result: no stale display during a new attempt.
	s.mu.Lock()
	s.state = VerifyVerifying
	s.result = nil
	s.mu.Unlock()

	hash = strings.TrimSpace(hash)
	if hash == "" {
		return s.settle(
			models.VerificationResult{Message: "Please enter a certificate hash"},
			notify.Notification{Title: "Error", Message: "Please enter a certificate hash", Variant: notify.Destructive},
		), nil
	}

	result, err := s.call.Run(ctx, func(ctx context.Context) (api.VerifyResponse, error) {
		return s.client.Verify(ctx, hash)
	})
	if err != nil {
		return models.VerificationResult{}, err
	}

	if info := result.Err(); info != nil {
		s.log.Warn(ctx, "verification failed", "error", info.Message)
		message := backendMessage(info.Cause, "Failed to verify certificate")
		return s.settle(
			models.VerificationResult{Message: message},
			notify.Notification{Title: "Error", Message: message, Variant: notify.Destructive},
		), nil
	}

	resp := result.Data()
	if !resp.IsValid {
		// An HTTP success carrying isValid=false is still a negative result.
		return s.settle(
			models.VerificationResult{Message: "Certificate not found or invalid"},
			notify.Notification{Title: "Verification Failed", Message: "Certificate not found or invalid", Variant: notify.Destructive},
		), nil
	}

	s.log.Info(ctx, "certificate verified", "id", resp.ID)
	return s.settle(
		models.VerificationResult{
			Valid: true,
			Certificate: &models.VerifiedCertificate{
				ID:           resp.ID,
				StudentName:  resp.Metadata.StudentName,
				MatricNumber: resp.Metadata.MatricNumber,
				Course:       resp.Metadata.Course,
				IssueDate:    resp.Metadata.DateIssued,
				Issuer:       resp.Metadata.Organization,
			},
		},
		notify.Notification{Title: "Verification Successful", Message: "Certificate verified successfully"},
	), nil
}
