package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/certvera/certvera/internal/client/auth"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/common"
)

// HTTPClient is the Client implementation talking JSON (and multipart for
// /issue) to the certificate service.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenProvider
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client, e.g. to adjust the
// timeout or point at a test server transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewHTTPClient constructs a client for the service at baseURL. Bearer
// tokens for authenticated endpoints come from the given provider.
func NewHTTPClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newRequest builds a request with the correlation id header and, when
// authenticated is set, the bearer token from the provider. A missing token
// surfaces as common.ErrNoAuthToken before anything is sent.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, authenticated bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if authenticated {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes a 2xx body into out (when out is
// non-nil). Non-2xx responses become *BackendError with the {error} envelope
// message when the body carries one; transport failures map to
// common.ErrUnavailable.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = json.Unmarshal(body, &envelope)
		return &BackendError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) ListCertificates(ctx context.Context) ([]models.CertificateRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/certificates", nil, true)
	if err != nil {
		return nil, err
	}

	var certificates []models.CertificateRecord
	if err := c.do(req, &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/users", nil, true)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := c.do(req, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) Issue(ctx context.Context, draft *models.CertificateDraft) (models.IssuedCertificateRef, error) {
	var ref models.IssuedCertificateRef

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := []struct {
		name, value string
	}{
		{"studentName", draft.StudentName},
		{"course", draft.Course},
		{"dateIssued", draft.DateIssued},
		{"recipientEmail", draft.RecipientEmail},
		{"organization", draft.Organization},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return ref, fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	// Variant fields: the dashboard form carries a matric number, the public
	// form an optional logo.
	if draft.MatricNumber != "" {
		if err := mw.WriteField("matricNumber", draft.MatricNumber); err != nil {
			return ref, fmt.Errorf("write field matricNumber: %w", err)
		}
	}
	if draft.HasLogo() {
		name := draft.LogoName
		if name == "" {
			name = "logo"
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="logo"; filename=%q`, name))
		header.Set("Content-Type", http.DetectContentType(draft.Logo))
		part, err := mw.CreatePart(header)
		if err != nil {
			return ref, fmt.Errorf("create logo part: %w", err)
		}
		if _, err := part.Write(draft.Logo); err != nil {
			return ref, fmt.Errorf("write logo part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return ref, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/issue", &body, true)
	if err != nil {
		return ref, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if err := c.do(req, &ref); err != nil {
		return ref, err
	}
	return ref, nil
}

func (c *HTTPClient) Verify(ctx context.Context, hash string) (VerifyResponse, error) {
	var result VerifyResponse

	body, err := json.Marshal(map[string]string{"certificateHash": hash})
	if err != nil {
		return result, fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/verify", bytes.NewReader(body), false)
	if err != nil {
		return result, err
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string, isAdmin bool) (string, error) {
	body, err := json.Marshal(map[string]any{
		"email":    email,
		"password": password,
		"isAdmin":  isAdmin,
	})
	if err != nil {
		return "", fmt.Errorf("marshal signup request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/signup", bytes.NewReader(body), false)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}
