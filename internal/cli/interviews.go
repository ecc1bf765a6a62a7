package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/exporters"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

const roundUsage = "round add|set <n>|rm <n>"

func (a *App) round(ctx context.Context, args []string) error {
	app, err := a.selected()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if len(app.InterviewRounds) == 0 {
			a.println("No interview rounds yet. Use 'round add'.")
			return nil
		}
		for i, rd := range app.InterviewRounds {
			a.println(a.view.round(i, rd))
		}
		return nil
	}

	switch args[0] {
	case "add":
		var n int
		if _, err := a.store.Update(ctx, app.ID, func(app *models.Application) error {
			n = app.AddInterviewRound()
			return nil
		}); err != nil {
			return err
		}
		a.println(fmt.Sprintf("Added round %d. Use 'round set %d' to schedule it.", n+1, n+1))
		return nil
	case "set", "rm":
		if err := needArgs(args, 2, roundUsage); err != nil {
			return err
		}
		i, err := parsePosition("round", args[1])
		if err != nil {
			return err
		}
		if err := common.CheckIndex("interview round", i, len(app.InterviewRounds)); err != nil {
			return err
		}
		if args[0] == "set" {
			return a.setRound(ctx, app, i)
		}
		return a.removeRound(ctx, app, i)
	}
	return errUsage(roundUsage)
}

func (a *App) setRound(ctx context.Context, app models.Application, i int) error {
	rd := app.InterviewRounds[i]
	var err error

	if rd.Date, err = GetDefaultText(a.reader, "Date (YYYY-MM-DD)", rd.Date, a.out); err != nil {
		return err
	}
	if rd.Time, err = GetDefaultText(a.reader, "Time (HH:MM)", rd.Time, a.out); err != nil {
		return err
	}

	typ, err := GetDefaultText(a.reader, "Location type (remote, in person)", string(rd.LocationType), a.out)
	if err != nil {
		return err
	}
	lt, err := models.ParseLocationType(typ)
	if err != nil {
		return err
	}
	rd.SetLocationType(lt)

	label := "Meeting link"
	if lt == models.LocationInPerson {
		label = "Address"
	}
	loc, err := GetDefaultText(a.reader, label, rd.ActiveLocation(), a.out)
	if err != nil {
		return err
	}
	rd.SetActiveLocation(loc)

	if rd.InterviewerName, err = GetDefaultText(a.reader, "Interviewer name", rd.InterviewerName, a.out); err != nil {
		return err
	}
	if rd.InterviewerContact, err = GetDefaultText(a.reader, "Interviewer contact", rd.InterviewerContact, a.out); err != nil {
		return err
	}

	if _, err := a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.SetInterviewRound(i, rd)
	}); err != nil {
		return err
	}
	a.println(a.view.round(i, rd))
	return nil
}

func (a *App) removeRound(ctx context.Context, app models.Application, i int) error {
	ok, err := Confirm(a.reader, fmt.Sprintf("Remove interview round %d?", i+1), a.out)
	if err != nil || !ok {
		return err
	}
	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.RemoveInterviewRound(i)
	})
	return err
}

func (a *App) upcoming(_ context.Context, _ []string) error {
	now := a.now()
	a.println(a.view.upcoming(views.UpcomingInterviews(a.store.List(), now), now))
	return nil
}

// calendar exports one round of the selected application, or with "all"
// every scheduled round of applications in the interviewing stage.
func (a *App) calendar(ctx context.Context, args []string) error {
	const usage = "ics <round>|all"
	if err := needArgs(args, 1, usage); err != nil {
		return err
	}
	loc := a.now().Location()

	var (
		name   string
		events []views.CalendarEvent
	)
	if args[0] == "all" {
		name = exporters.AllInterviewsFile
		events = views.InterviewEvents(a.store.List(), loc)
	} else {
		i, err := parsePosition("round", args[0])
		if err != nil {
			return err
		}
		app, err := a.selected()
		if err != nil {
			return err
		}
		ev, err := views.InterviewEvent(app, i, loc)
		if err != nil {
			return err
		}
		name = exporters.CalendarFileName(app.Company)
		events = []views.CalendarEvent{ev}
	}

	path, err := a.exports.Calendar(ctx, name, events)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Wrote %d interview(s) to %s", len(events), path))
	return nil
}
