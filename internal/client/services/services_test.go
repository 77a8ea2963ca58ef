package services

import (
	"context"
	"sync/atomic"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/logging"
)

func testLogger() logging.Logger {
	return logging.Discard()
}

// fakeClient implements api.Client with canned responses. The embedded
// interface panics on anything a test did not stub explicitly.
type fakeClient struct {
	api.Client

	certs    []models.CertificateRecord
	certsErr error

	users    []models.User
	usersErr error

	issueRef    models.IssuedCertificateRef
	issueErr    error
	issueCalls  atomic.Int32
	issueGate   chan struct{} // when set, Issue blocks until closed
	lastIssued  *models.CertificateDraft
	verifyResp  api.VerifyResponse
	verifyErr   error
	verifyCalls atomic.Int32

	signupToken string
	signupErr   error
}

func (f *fakeClient) ListCertificates(ctx context.Context) ([]models.CertificateRecord, error) {
	return f.certs, f.certsErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeClient) Issue(ctx context.Context, draft *models.CertificateDraft) (models.IssuedCertificateRef, error) {
	f.issueCalls.Add(1)
	f.lastIssued = draft
	if f.issueGate != nil {
		<-f.issueGate
	}
	return f.issueRef, f.issueErr
}

func (f *fakeClient) Verify(ctx context.Context, hash string) (api.VerifyResponse, error) {
	f.verifyCalls.Add(1)
	return f.verifyResp, f.verifyErr
}

func (f *fakeClient) Signup(ctx context.Context, email, password string, isAdmin bool) (string, error) {
	return f.signupToken, f.signupErr
}
