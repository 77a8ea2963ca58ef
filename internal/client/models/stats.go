package models

// DashboardStats are the summary counters shown on the dashboard, each a
// pure reduction over the current certificate list (and, for ActiveUsers,
// the optional user list).
type DashboardStats struct {
	TotalCertificates    int `json:"total_certificates"`
	CertificatesVerified int `json:"certificates_verified"`
	ActiveUsers          int `json:"active_users"`
	RecentIssuesCount    int `json:"recent_issues_count"`
}

// RecentCertificate is the projection used by the "recent certificates"
// dashboard table: one of the 4 most recently issued records.
type RecentCertificate struct {
	ID          string `json:"id"`
	StudentName string `json:"student_name"`
	Course      string `json:"course"`
	DateIssued  string `json:"date_issued"` // ISO calendar date (yyyy-mm-dd)
}
