// Package cli implements the interactive terminal client for the
// certificate service: issuing, verifying, dashboard statistics, and
// certificate image export.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/auth"
	"github.com/certvera/certvera/internal/client/config"
	"github.com/certvera/certvera/internal/client/export"
	"github.com/certvera/certvera/internal/client/forms"
	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/client/services"
	"github.com/certvera/certvera/internal/logging"
)

type App struct {
	config    *config.Config
	account   *services.AccountService
	issue     *services.IssueService
	verify    *services.VerifyService
	dashboard *services.DashboardService
	exporter  *export.Exporter
	notifier  notify.Notifier
	log       logging.Logger
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	notifier := notify.NewWriterNotifier(os.Stdout)

	tokens := auth.NewFileStore(c.TokenFile)
	apiClient := api.NewHTTPClient(c.BackendBaseURL, tokens, api.WithTimeout(c.RequestTimeout))

	return &App{
		config:    c,
		account:   services.NewAccountService(apiClient, tokens, notifier, log),
		issue:     services.NewIssueService(apiClient, tokens, notifier, log, forms.PublicIssue),
		verify:    services.NewVerifyService(apiClient, notifier, log),
		dashboard: services.NewDashboardService(apiClient, notifier, log),
		exporter:  export.NewExporter(notifier, log),
		notifier:  notifier,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// isLoggedIn reports whether a usable token is stored.
func (a *App) isLoggedIn() bool {
	return a.account.SessionCheck(context.Background()) == nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(signed in)"
	}
	return "(anonymous)"
}
