package views

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withRound(a models.Application, r models.InterviewRound) models.Application {
	if r.LocationType == "" {
		r.LocationType = models.LocationRemote
	}
	a.InterviewRounds = append(a.InterviewRounds, r)
	return a
}

func TestUpcomingInterviews(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	a := app("a", models.StatusInterviewing)
	a = withRound(a, models.InterviewRound{Date: "2024-05-09", Time: "10:00"}) // past
	a = withRound(a, models.InterviewRound{Date: "2024-05-12", Time: "09:00"})
	b := app("b", models.StatusApplied)
	b = withRound(b, models.InterviewRound{Date: "2024-05-10", Time: "08:00"}) // today, earlier hour
	b = withRound(b, models.InterviewRound{})                                  // unscheduled
	c := app("c", models.StatusInterviewing)
	c = withRound(c, models.InterviewRound{Date: "2024-05-11"})
	c = withRound(c, models.InterviewRound{Date: "not-a-date", Time: "10:00"})

	got := UpcomingInterviews([]models.Application{a, b, c}, now)

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].AppID)
	assert.Equal(t, "c", got[1].AppID)
	assert.Equal(t, "a", got[2].AppID)
	assert.Equal(t, 1, got[2].Round)
	assert.Equal(t, time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC), got[2].Start)
}

func TestInterviewEvent_Remote(t *testing.T) {
	a := withRound(app("a", models.StatusInterviewing), models.InterviewRound{
		Date:     "2024-06-03",
		Time:     "14:30",
		Location: models.Location{Remote: "https://meet.example.com/abc"},
	})

	ev, err := InterviewEvent(a, 0, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "a-round-1@jobkeeper", ev.UID)
	assert.Equal(t, "Interview with Acme a", ev.Summary)
	assert.Equal(t, "Job Interview for Engineer a position\n\nMeeting Link: https://meet.example.com/abc", ev.Description)
	assert.Equal(t, "Remote Interview", ev.Location)
	assert.Equal(t, "https://meet.example.com/abc", ev.URL)
	assert.Equal(t, time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 6, 3, 15, 30, 0, 0, time.UTC), ev.End())
}

func TestInterviewEvent_InPerson(t *testing.T) {
	a := withRound(app("a", models.StatusInterviewing), models.InterviewRound{
		Date:               "2024-06-03",
		Time:               "09:00",
		LocationType:       models.LocationInPerson,
		Location:           models.Location{InPerson: "1 Main St"},
		InterviewerName:    "Dana",
		InterviewerContact: "dana@example.com",
	})

	ev, err := InterviewEvent(a, 0, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "1 Main St", ev.Location)
	assert.Equal(t, "Job Interview for Engineer a position\n\nLocation: 1 Main St\nInterviewer: Dana (dana@example.com)", ev.Description)
	assert.Equal(t, MapsURL("1 Main St"), ev.URL)
}

func TestInterviewEvent_Errors(t *testing.T) {
	a := withRound(app("a", models.StatusInterviewing), models.InterviewRound{Date: "2024-06-03"})

	_, err := InterviewEvent(a, 0, time.UTC)
	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"time"}, ve.Fields)

	_, err = InterviewEvent(a, 1, time.UTC)
	assert.ErrorIs(t, err, common.ErrIndex)

	a.InterviewRounds[0].Time = "25:99"
	_, err = InterviewEvent(a, 0, time.UTC)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestInterviewEvents_OnlyInterviewing(t *testing.T) {
	a := withRound(app("a", models.StatusInterviewing), models.InterviewRound{Date: "2024-06-03", Time: "10:00"})
	a = withRound(a, models.InterviewRound{Date: "2024-06-04"})
	a = withRound(a, models.InterviewRound{})
	b := withRound(app("b", models.StatusApplied), models.InterviewRound{Date: "2024-06-03", Time: "10:00"})

	evs := InterviewEvents([]models.Application{a, b}, time.UTC)

	require.Len(t, evs, 2)
	assert.Equal(t, "a-round-1@jobkeeper", evs[0].UID)
	assert.Equal(t, "a-round-2@jobkeeper", evs[1].UID)
	assert.Equal(t, time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC), evs[1].Start)
	assert.Empty(t, a.InterviewRounds[1].Time, "input must not change")
}
