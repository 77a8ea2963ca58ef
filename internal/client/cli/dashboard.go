package cli

import (
	"context"
	"fmt"
)

// Dashboard loads and prints the summary statistics and the recent
// certificates table.
func (a *App) Dashboard(ctx context.Context) error {
	data, err := a.dashboard.Load(ctx)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Total Certificates:    %d", data.Stats.TotalCertificates))
	printlnFn(fmt.Sprintf("Certificates Verified: %d", data.Stats.CertificatesVerified))
	printlnFn(fmt.Sprintf("Active Users:          %d", data.Stats.ActiveUsers))
	printlnFn(fmt.Sprintf("Recent Issues:         %d", data.Stats.RecentIssuesCount))

	if len(data.Recent) == 0 {
		printlnFn("No certificates found")
		return nil
	}

	printlnFn("Recent Certificates:")
	for _, cert := range data.Recent {
		printlnFn(fmt.Sprintf("  %-14.14s  %-24s  %-20s  %s",
			cert.ID, cert.StudentName, cert.Course, cert.DateIssued))
	}
	return nil
}

// List prints every issued certificate, the terminal version of the admin
// certificates table.
func (a *App) List(ctx context.Context) error {
	data, err := a.dashboard.Load(ctx)
	if err != nil {
		return err
	}

	for _, cert := range data.Certificates {
		printlnFn(fmt.Sprintf("%-14.14s  %-24s  %-28s  %-20s  %-20s  %s",
			cert.ID, cert.StudentName, cert.RecipientEmail, cert.Course, cert.Organization, cert.DateIssued))
	}
	printlnFn(fmt.Sprintf("Total Certificates: %d", len(data.Certificates)))
	return nil
}
