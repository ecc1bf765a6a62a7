package exporters

import (
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

const productID = "-//jobkeeper//interviews//EN"

// WriteCalendar writes events as one iCalendar document. now is used as the
// DTSTAMP of every event.
func WriteCalendar(w io.Writer, events []views.CalendarEvent, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End())
		ev.SetSummary(e.Summary)
		ev.SetDescription(e.Description)
		ev.SetLocation(e.Location)
		if e.URL != "" {
			ev.SetURL(e.URL)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}
