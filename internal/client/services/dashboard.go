package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/certvera/certvera/internal/client/api"
	"github.com/certvera/certvera/internal/client/models"
	"github.com/certvera/certvera/internal/client/notify"
	"github.com/certvera/certvera/internal/logging"
)

// timeNow is a test seam for the "recent issues" clock.
var timeNow = time.Now

// DashboardData is one dashboard load: counters plus the recent-certificates
// projection. Replaced wholesale per load.
type DashboardData struct {
	Stats        models.DashboardStats
	Recent       []models.RecentCertificate
	Certificates []models.CertificateRecord
}

// DashboardService loads and aggregates the dashboard. The certificates
// fetch is required; the users fetch is admin-only and best-effort, so its
// failure substitutes an empty list instead of surfacing as an error.
type DashboardService struct {
	client   api.Client
	notifier notify.Notifier
	log      logging.Logger
}

func NewDashboardService(client api.Client, notifier notify.Notifier, log logging.Logger) *DashboardService {
	return &DashboardService{
		client:   client,
		notifier: notifier,
		log:      log.With("workflow", "dashboard"),
	}
}

// Load fetches certificates and users concurrently, waits for both to
// settle, and reduces them to DashboardData. A certificates failure emits
// one notification and returns the error; a users failure is logged and
// swallowed (expected for non-administrative sessions).
func (s *DashboardService) Load(ctx context.Context) (DashboardData, error) {
	var (
		certificates []models.CertificateRecord
		users        []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		certificates, err = s.client.ListCertificates(gctx)
		return err
	})
	g.Go(func() error {
		fetched, err := s.client.ListUsers(gctx)
		if err != nil {
			s.log.Warn(gctx, "users fetch failed, assuming non-admin session", "error", err)
			return nil
		}
		users = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error(ctx, "dashboard load failed", "error", err)
		s.notifier.Notify(notify.Notification{
			Title:   "Error",
			Message: backendMessage(err, "Failed to load dashboard data"),
			Variant: notify.Destructive,
		})
		return DashboardData{}, err
	}

	return DashboardData{
		Stats:        ComputeStats(certificates, users, timeNow()),
		Recent:       RecentCertificates(certificates),
		Certificates: certificates,
	}, nil
}
