package services

import (
	"sort"
	"time"

	"github.com/certvera/certvera/internal/client/models"
)

// issuedDateFormats are the shapes the backend has been seen emitting for
// date_issued. Records with unparseable dates never count as recent and sort
// after everything else.
var issuedDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseIssuedDate(s string) (time.Time, bool) {
	for _, format := range issuedDateFormats {
		if ts, err := time.Parse(format, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ComputeStats reduces the certificate list (and optional user list) to the
// dashboard counters. Pure and deterministic given its inputs; users may be
// nil when the privileged fetch failed, in which case ActiveUsers is 0.
//
// "Recent" means issued within one calendar month of now, computed with
// AddDate(0,-1,0). At month ends the subtraction normalizes forward (one
// month before March 31 lands in early March), the same rollover the
// platform date arithmetic applies everywhere else.
func ComputeStats(certificates []models.CertificateRecord, users []models.User, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{
		TotalCertificates: len(certificates),
		ActiveUsers:       len(users),
	}

	oneMonthAgo := now.AddDate(0, -1, 0)
	for _, cert := range certificates {
		if cert.IsValid {
			stats.CertificatesVerified++
		}
		if issued, ok := parseIssuedDate(cert.DateIssued); ok && !issued.Before(oneMonthAgo) {
			stats.RecentIssuesCount++
		}
	}
	return stats
}

// RecentCertificates projects the 4 most recently issued records, ordered by
// issue date descending. The sort is stable, so ties keep their fetch order.
func RecentCertificates(certificates []models.CertificateRecord) []models.RecentCertificate {
	sorted := make([]models.CertificateRecord, len(certificates))
	copy(sorted, certificates)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := parseIssuedDate(sorted[i].DateIssued)
		b, bok := parseIssuedDate(sorted[j].DateIssued)
		if aok != bok {
			return aok
		}
		return a.After(b)
	})

	if len(sorted) > 4 {
		sorted = sorted[:4]
	}

	recent := make([]models.RecentCertificate, 0, len(sorted))
	for _, cert := range sorted {
		date := cert.DateIssued
		if issued, ok := parseIssuedDate(cert.DateIssued); ok {
			date = issued.Format("2006-01-02")
		}
		recent = append(recent, models.RecentCertificate{
			ID:          cert.ID,
			StudentName: cert.StudentName,
			Course:      cert.Course,
			DateIssued:  date,
		})
	}
	return recent
}
