package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// DefaultInterviewDuration is the length given to every calendar event.
const DefaultInterviewDuration = time.Hour

// UpcomingInterview is a scheduled round of one application.
type UpcomingInterview struct {
	AppID   string
	Title   string
	Company string
	Round   int
	Start   time.Time
	Details models.InterviewRound
}

// UpcomingInterviews lists rounds dated today or later, earliest first.
// Rounds with an unparseable date are skipped. A round without a time sorts
// at the start of its day.
func UpcomingInterviews(apps []models.Application, now time.Time) []UpcomingInterview {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	var out []UpcomingInterview
	for _, a := range apps {
		for i, r := range a.InterviewRounds {
			if strings.TrimSpace(r.Date) == "" {
				continue
			}
			start, err := r.StartsAt(loc)
			if err != nil || start.Before(today) {
				continue
			}
			out = append(out, UpcomingInterview{
				AppID:   a.ID,
				Title:   a.Title,
				Company: a.Company,
				Round:   i,
				Start:   start,
				Details: r,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// CalendarEvent is a calendar-neutral description of one interview.
type CalendarEvent struct {
	UID         string
	Summary     string
	Description string
	Location    string
	URL         string
	Start       time.Time
	Duration    time.Duration
}

// End returns the end time of the event.
func (e CalendarEvent) End() time.Time {
	return e.Start.Add(e.Duration)
}

// InterviewEvent builds the calendar event for round of app in loc. The
// round needs both a date and a time.
func InterviewEvent(app models.Application, round int, loc *time.Location) (CalendarEvent, error) {
	if err := common.CheckIndex("interview round", round, len(app.InterviewRounds)); err != nil {
		return CalendarEvent{}, err
	}
	r := app.InterviewRounds[round]
	if missing := r.Missing(); len(missing) > 0 {
		return CalendarEvent{}, &common.ValidationError{Fields: missing}
	}
	if err := r.Validate(); err != nil {
		return CalendarEvent{}, err
	}
	start, err := r.StartsAt(loc)
	if err != nil {
		return CalendarEvent{}, &common.ValidationError{Fields: []string{"date", "time"}, Reason: err.Error()}
	}

	ev := CalendarEvent{
		UID:      fmt.Sprintf("%s-round-%d@jobkeeper", app.ID, round+1),
		Summary:  "Interview with " + app.Company,
		Start:    start,
		Duration: DefaultInterviewDuration,
	}

	desc := fmt.Sprintf("Job Interview for %s position", app.Title)
	where := strings.TrimSpace(r.ActiveLocation())
	if r.LocationType == models.LocationInPerson {
		ev.Location = where
		if where != "" {
			desc += "\n\nLocation: " + where
			ev.URL = MapsURL(where)
		}
	} else {
		ev.Location = "Remote Interview"
		if where != "" {
			desc += "\n\nMeeting Link: " + where
			ev.URL = where
		}
	}
	if name := strings.TrimSpace(r.InterviewerName); name != "" {
		desc += "\nInterviewer: " + name
		if c := strings.TrimSpace(r.InterviewerContact); c != "" {
			desc += " (" + c + ")"
		}
	}
	ev.Description = desc
	return ev, nil
}

// BulkDefaultTime is the start used in bulk exports for dated rounds that
// have no time yet.
const BulkDefaultTime = "09:00"

// InterviewEvents builds events for every dated round of every application
// in the Interviewing status. Rounds without a time start at
// BulkDefaultTime; rounds that still cannot be turned into an event are
// skipped.
func InterviewEvents(apps []models.Application, loc *time.Location) []CalendarEvent {
	var out []CalendarEvent
	for _, a := range apps {
		if a.Status != models.StatusInterviewing {
			continue
		}
		a = a.Clone()
		for i := range a.InterviewRounds {
			r := &a.InterviewRounds[i]
			if strings.TrimSpace(r.Date) == "" {
				continue
			}
			if strings.TrimSpace(r.Time) == "" {
				r.Time = BulkDefaultTime
			}
			ev, err := InterviewEvent(a, i, loc)
			if err != nil {
				continue
			}
			out = append(out, ev)
		}
	}
	return out
}
