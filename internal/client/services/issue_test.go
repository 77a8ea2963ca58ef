package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/auth"
	"github.com/certvera/certvera/internal/client/flight"
	"github.com/certvera/certvera/internal/client/forms"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/common"
)

func newIssueService(t *testing.T, client *fakeClient, variant forms.Variant) (*IssueService, *notify.Recorder, *auth.MemoryStore) {
	t.Helper()
	tokens := auth.NewMemoryStore()
	require.NoError(t, tokens.Save(context.Background(), "tok123"))
	recorder := &notify.Recorder{}
	return NewIssueService(client, tokens, recorder, testLogger(), variant), recorder, tokens
}

func fillDraft(t *testing.T, s *IssueService) {
	t.Helper()
	for field, value := range map[string]string{
		forms.FieldStudentName:    "Ada Lovelace",
		forms.FieldCourse:         "CS101",
		forms.FieldDateIssued:     "2024-01-10",
		forms.FieldRecipientEmail: "ada@example.com",
		forms.FieldOrganization:   "MIT",
	} {
		require.NoError(t, s.UpdateField(field, value))
	}
}

func TestSubmitIncompleteDraftSkipsNetwork(t *testing.T) {
	client := &fakeClient{}
	s, recorder, _ := newIssueService(t, client, forms.PublicIssue)

	fillDraft(t, s)
	require.NoError(t, s.UpdateField(forms.FieldCourse, "   "))

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	require.Equal(t, IssueFailed, s.State())
	require.Zero(t, client.issueCalls.Load(), "validation failure must not contact the network")

	n, ok := recorder.Last()
	require.True(t, ok)
	require.Equal(t, "Error", n.Title)
	require.Equal(t, "Please fill in the course", n.Message)
	require.Equal(t, notify.Destructive, n.Variant)

	// The draft survives the failure for a retry.
	require.Equal(t, "Ada Lovelace", s.Draft().StudentName)
}

func TestSubmitSuccessResetsDraft(t *testing.T) {
	client := &fakeClient{issueRef: models.IssuedCertificateRef{CertificateID: "abc123"}}
	s, recorder, _ := newIssueService(t, client, forms.PublicIssue)

	fillDraft(t, s)
	require.NoError(t, s.Submit(context.Background()))

	require.Equal(t, IssueIssued, s.State())
	require.Equal(t, int32(1), client.issueCalls.Load())

	ref, ok := s.LastIssued()
	require.True(t, ok)
	require.Equal(t, "abc123", ref.CertificateID)

	require.Equal(t, 1, recorder.Count())
	n, _ := recorder.Last()
	require.Equal(t, "Certificate Issued", n.Title)
	require.Contains(t, n.Message, "abc123")
	require.Equal(t, notify.Info, n.Variant)

	require.Equal(t, models.CertificateDraft{}, s.Draft(), "draft resets to empty after issuance")
}

func TestSubmitResetRoundTrip(t *testing.T) {
	client := &fakeClient{issueRef: models.IssuedCertificateRef{CertificateID: "abc123"}}
	s, _, _ := newIssueService(t, client, forms.PublicIssue)

	fillDraft(t, s)
	s.AttachLogo([]byte{1, 2, 3}, "logo.png")
	require.NoError(t, s.Submit(context.Background()))

	require.Equal(t, models.CertificateDraft{}, s.Draft())
	require.False(t, s.Draft().HasLogo(), "logo back to the placeholder")
}

func TestSubmitBackendFailureKeepsDraft(t *testing.T) {
	client := &fakeClient{issueErr: &api.BackendError{Status: 400, Message: "invalid date"}}
	s, recorder, _ := newIssueService(t, client, forms.PublicIssue)

	fillDraft(t, s)
	err := s.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, IssueFailed, s.State())

	n, _ := recorder.Last()
	require.Equal(t, "Error", n.Title)
	require.Equal(t, "invalid date", n.Message, "backend-provided message wins over the generic one")

	require.Equal(t, "Ada Lovelace", s.Draft().StudentName)
}

func TestSubmitGenericFailureMessage(t *testing.T) {
	client := &fakeClient{issueErr: &api.BackendError{Status: 500}}
	s, recorder, _ := newIssueService(t, client, forms.PublicIssue)

	fillDraft(t, s)
	require.Error(t, s.Submit(context.Background()))

	n, _ := recorder.Last()
	require.Equal(t, "Failed to issue certificate.", n.Message)
}

func TestSubmitWithoutTokenSkipsNetwork(t *testing.T) {
	client := &fakeClient{}
	s, recorder, tokens := newIssueService(t, client, forms.PublicIssue)
	require.NoError(t, tokens.Clear(context.Background()))

	fillDraft(t, s)
	err := s.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrNoAuthToken)
	require.Zero(t, client.issueCalls.Load())

	n, _ := recorder.Last()
	require.Equal(t, "no authentication token found", n.Message)
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	gate := make(chan struct{})
	client := &fakeClient{
		issueRef:  models.IssuedCertificateRef{CertificateID: "abc123"},
		issueGate: gate,
	}
	s, _, _ := newIssueService(t, client, forms.PublicIssue)
	fillDraft(t, s)

	done := make(chan error, 1)
	go func() { done <- s.Submit(context.Background()) }()

	require.Eventually(t, func() bool { return client.issueCalls.Load() == 1 }, time.Second, time.Millisecond)

	err := s.Submit(context.Background())
	require.ErrorIs(t, err, flight.ErrInFlight)
	close(gate)

	require.NoError(t, <-done)
	require.Equal(t, int32(1), client.issueCalls.Load(), "no second network call")
}

func TestUseVariantKeepsDraft(t *testing.T) {
	client := &fakeClient{}
	s, recorder, _ := newIssueService(t, client, forms.PublicIssue)
	fillDraft(t, s)

	s.UseVariant(forms.DashboardIssue)
	require.Equal(t, "Ada Lovelace", s.Draft().StudentName, "entered values survive the switch")

	// The matric number is blank and now required.
	err := s.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	require.Zero(t, client.issueCalls.Load())

	n, _ := recorder.Last()
	require.Equal(t, "Please fill in the matric number", n.Message)

	require.NoError(t, s.UpdateField(forms.FieldMatricNumber, "M123"))
	require.NoError(t, s.Submit(context.Background()))
	require.Equal(t, "M123", client.lastIssued.MatricNumber)
}

func TestUpdateFieldUnknownName(t *testing.T) {
	s, _, _ := newIssueService(t, &fakeClient{}, forms.DashboardIssue)
	require.ErrorIs(t, s.UpdateField("nope", "x"), common.ErrUnknownField)
}
