package exporters

import (
	"strings"
	"time"
)

const (
	SpreadsheetFileName = "JobApplications.xlsx"
	SpreadsheetSheet    = "Job Applications"
	AllInterviewsFile   = "interviews.ics"
)

// CalendarFileName returns the file name for the interview calendar of
// company, e.g. "interview-acme-corp.ics".
func CalendarFileName(company string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(company)), "-")
	slug = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return -1
		}
		return r
	}, slug)
	if slug == "" {
		slug = "unknown"
	}
	return "interview-" + slug + ".ics"
}

// BackupFileName returns the dated backup file name for now.
func BackupFileName(now time.Time) string {
	return "job-applications-" + now.Format("2006-01-02") + ".json"
}
