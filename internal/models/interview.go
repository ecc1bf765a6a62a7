package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// LocationType tells which of the Location fields is meaningful.
type LocationType string

const (
	LocationRemote   LocationType = "remote"
	LocationInPerson LocationType = "inPerson"
)

// ParseLocationType accepts "remote", "inperson", "in-person" or "in person"
// in any case.
func ParseLocationType(s string) (LocationType, error) {
	switch normalizeStatus(s) {
	case "remote":
		return LocationRemote, nil
	case "inperson", "onsite":
		return LocationInPerson, nil
	}
	return "", &common.ValidationError{
		Fields: []string{"locationType"},
		Reason: fmt.Sprintf("unknown location type %q", s),
	}
}

// Location holds a meeting link and an office address; only the one matching
// the round's LocationType is shown.
type Location struct {
	Remote   string `json:"remote"`
	InPerson string `json:"inPerson"`
}

// TimeLayout is the layout of InterviewRound.Time.
const TimeLayout = "15:04"

// InterviewRound is one scheduled interview.
type InterviewRound struct {
	Date               string       `json:"date"`
	Time               string       `json:"time"`
	LocationType       LocationType `json:"locationType"`
	Location           Location     `json:"location"`
	InterviewerName    string       `json:"interviewerName"`
	InterviewerContact string       `json:"interviewerContact"`
}

// NewInterviewRound returns an empty round. New rounds are remote until told
// otherwise.
func NewInterviewRound() InterviewRound {
	return InterviewRound{LocationType: LocationRemote}
}

// IsZero reports whether nothing was filled in.
func (r InterviewRound) IsZero() bool {
	return r.Date == "" && r.Time == "" && r.Location == (Location{}) &&
		r.InterviewerName == "" && r.InterviewerContact == ""
}

// Scheduled reports whether both date and time are set.
func (r InterviewRound) Scheduled() bool {
	return strings.TrimSpace(r.Date) != "" && strings.TrimSpace(r.Time) != ""
}

// Missing lists the scheduling fields that are still empty.
func (r InterviewRound) Missing() []string {
	var missing []string
	if strings.TrimSpace(r.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(r.Time) == "" {
		missing = append(missing, "time")
	}
	return missing
}

// StartsAt combines Date and Time in loc. A round without a time starts at
// midnight.
func (r InterviewRound) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(r.Time) == "" {
		return time.ParseInLocation(DateLayout, strings.TrimSpace(r.Date), loc)
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout,
		strings.TrimSpace(r.Date)+" "+strings.TrimSpace(r.Time), loc)
}

// ActiveLocation returns the meeting link for remote rounds and the address
// for in-person ones.
func (r InterviewRound) ActiveLocation() string {
	if r.LocationType == LocationInPerson {
		return r.Location.InPerson
	}
	return r.Location.Remote
}

// SetLocationType switches the location type and clears both locations,
// so a stale link never follows an in-person round.
func (r *InterviewRound) SetLocationType(t LocationType) {
	if r.LocationType == t {
		return
	}
	r.LocationType = t
	r.Location = Location{}
}

// SetActiveLocation stores loc in the field matching the location type.
func (r *InterviewRound) SetActiveLocation(loc string) {
	if r.LocationType == LocationInPerson {
		r.Location.InPerson = loc
		return
	}
	r.Location.Remote = loc
}

// Validate checks the formats of the filled-in date and time.
func (r InterviewRound) Validate() error {
	if d := strings.TrimSpace(r.Date); d != "" {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return &common.ValidationError{Fields: []string{"date"}, Reason: "want YYYY-MM-DD"}
		}
	}
	if tm := strings.TrimSpace(r.Time); tm != "" {
		if _, err := time.Parse(TimeLayout, tm); err != nil {
			return &common.ValidationError{Fields: []string{"time"}, Reason: "want HH:MM"}
		}
	}
	switch r.LocationType {
	case LocationRemote, LocationInPerson:
	default:
		return &common.ValidationError{Fields: []string{"locationType"}, Reason: fmt.Sprintf("unknown location type %q", r.LocationType)}
	}
	return nil
}
