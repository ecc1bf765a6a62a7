package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// Status is the stage an application has reached. The string values are the
// labels stored in snapshots and backups.
type Status string

const (
	StatusNotStarted   Status = "Not started"
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
)

// Statuses lists every status in pipeline order.
var Statuses = []Status{
	StatusNotStarted,
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusRejected,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Completed reports whether the application reached a final outcome.
func (s Status) Completed() bool {
	return s == StatusOffer || s == StatusRejected
}

func normalizeStatus(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// ParseStatus accepts a status label in any case, with or without spaces,
// underscores or dashes ("not started", "NOT_STARTED", "notstarted").
func ParseStatus(s string) (Status, error) {
	n := normalizeStatus(s)
	for _, st := range Statuses {
		if normalizeStatus(string(st)) == n {
			return st, nil
		}
	}
	return "", &common.ValidationError{
		Fields: []string{"status"},
		Reason: fmt.Sprintf("unknown status %q", s),
	}
}
