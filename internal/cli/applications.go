package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

func (a *App) selected() (models.Application, error) {
	if a.selectedID == "" {
		return models.Application{}, errNoSelection
	}
	app, err := a.store.Get(a.selectedID)
	if err != nil {
		a.selectedID = ""
		return models.Application{}, errNoSelection
	}
	return app, nil
}

// resolve finds an application by 1-based list position or by id.
func (a *App) resolve(arg string) (models.Application, error) {
	if _, err := strconv.Atoi(arg); err == nil {
		i, err := parsePosition("position", arg)
		if err != nil {
			return models.Application{}, err
		}
		return a.store.At(i)
	}
	return a.store.Get(arg)
}

func (a *App) add(ctx context.Context, _ []string) error {
	title, err := GetSimpleText(a.reader, "Job title", a.out)
	if err != nil {
		return err
	}
	company, err := GetSimpleText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}
	today := a.now().Format(models.DateLayout)
	date, err := GetDefaultText(a.reader, "Date applied (YYYY-MM-DD)", today, a.out)
	if err != nil {
		return err
	}

	app, err := a.store.Add(ctx, models.NewApplication{Title: title, Company: company, Date: date})
	if app.ID != "" {
		a.selectedID = app.ID
		a.println("Added and selected:", app.Company, "-", app.Title)
	}
	return err
}

func (a *App) list(_ context.Context, _ []string) error {
	a.println(a.view.list(views.Overviews(a.store.List()), a.selectedID))
	return nil
}

func (a *App) board(_ context.Context, _ []string) error {
	a.println(a.view.board(a.store.GroupByStatus()))
	return nil
}

func (a *App) selectApp(_ context.Context, args []string) error {
	if err := needArgs(args, 1, "select <n|id>"); err != nil {
		return err
	}
	app, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	a.selectedID = app.ID
	a.println("Selected:", app.Company, "-", app.Title)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.selectApp(ctx, args); err != nil {
			return err
		}
	}
	app, err := a.selected()
	if err != nil {
		return err
	}
	a.println(a.view.detail(app))
	return nil
}

func (a *App) setStatus(ctx context.Context, args []string) error {
	app, err := a.selected()
	if err != nil {
		return err
	}
	label := strings.Join(args, " ")
	if label == "" {
		names := make([]string, len(models.Statuses))
		for i, s := range models.Statuses {
			names[i] = string(s)
		}
		label, err = GetSimpleText(a.reader, "New status ("+strings.Join(names, ", ")+")", a.out)
		if err != nil {
			return err
		}
	}
	st, err := models.ParseStatus(label)
	if err != nil {
		return err
	}
	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.SetStatus(st)
	})
	if err == nil {
		a.println("Status:", st)
	}
	return err
}

func (a *App) edit(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "edit <field>"); err != nil {
		return err
	}
	f, err := models.ParseEditableField(args[0])
	if err != nil {
		return err
	}
	app, err := a.selected()
	if err != nil {
		return err
	}

	app, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.BeginEdit(f)
	})
	if err != nil {
		return err
	}
	draft, _ := app.Draft(f)

	prompt := fmt.Sprintf("New %s [%s] (empty line cancels, '-' clears)", f, draft)
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil || v == "" {
		if _, cerr := a.store.Update(ctx, app.ID, func(app *models.Application) error {
			return app.CancelEdit(f)
		}); cerr != nil {
			return cerr
		}
		if err == nil {
			a.println("Edit cancelled.")
		}
		return err
	}
	if v == "-" {
		v = ""
	}

	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		if err := app.UpdateDraft(f, v); err != nil {
			return err
		}
		return app.CommitEdit(f, v)
	})
	if err != nil {
		return fmt.Errorf("%w (the field stays in edit mode; 'cancel %s' discards it)", err, f)
	}
	a.println("Saved", f)
	return nil
}

func (a *App) cancelEdit(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "cancel <field>"); err != nil {
		return err
	}
	f, err := models.ParseEditableField(args[0])
	if err != nil {
		return err
	}
	app, err := a.selected()
	if err != nil {
		return err
	}
	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.CancelEdit(f)
	})
	return err
}

func (a *App) notes(ctx context.Context, _ []string) error {
	app, err := a.selected()
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Notes (replaces the current notes)", a.out)
	if err != nil {
		return err
	}
	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		app.Notes = text
		return nil
	})
	return err
}

func (a *App) reset(ctx context.Context, _ []string) error {
	app, err := a.selected()
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Reset %s - %s? Status, checklist, notes, link, req id and attachments are cleared.", app.Company, app.Title), a.out)
	if err != nil || !ok {
		return err
	}
	_, err = a.store.Reset(ctx, app.ID)
	if err == nil {
		a.println("Application reset.")
	}
	return err
}

func (a *App) deleteApp(ctx context.Context, _ []string) error {
	app, err := a.selected()
	if err != nil {
		return err
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s - %s?", app.Company, app.Title), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.store.Remove(ctx, app.ID); err != nil {
		return err
	}
	a.selectedID = ""
	a.println("Deleted.")
	return nil
}

func (a *App) move(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "move <from> <to>"); err != nil {
		return err
	}
	from, err := parsePosition("from", args[0])
	if err != nil {
		return err
	}
	to, err := parsePosition("to", args[1])
	if err != nil {
		return err
	}
	return a.store.Move(ctx, from, to)
}

// mutateSelected applies fn to the selected application.
func (a *App) mutateSelected(ctx context.Context, fn func(*models.Application) error) (models.Application, error) {
	app, err := a.selected()
	if err != nil {
		return models.Application{}, err
	}
	return a.store.Update(ctx, app.ID, fn)
}
