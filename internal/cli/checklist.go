package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// taskArgs parses "<group> <task>" positions.
func taskArgs(args []string, usage string) (g, t int, err error) {
	if err := needArgs(args, 2, usage); err != nil {
		return 0, 0, err
	}
	if g, err = parsePosition("group", args[0]); err != nil {
		return 0, 0, err
	}
	if t, err = parsePosition("task", args[1]); err != nil {
		return 0, 0, err
	}
	return g, t, nil
}

func (a *App) toggle(ctx context.Context, args []string) error {
	g, t, err := taskArgs(args, "toggle <group> <task>")
	if err != nil {
		return err
	}
	app, err := a.mutateSelected(ctx, func(app *models.Application) error {
		return app.Checklist.ToggleTask(g, t)
	})
	if err != nil {
		return err
	}
	a.println("Progress:", progressBar(app.Progress()))
	return nil
}

func (a *App) addTask(ctx context.Context, args []string) error {
	const usage = "addtask <group> <text>"
	if err := needArgs(args, 2, usage); err != nil {
		return err
	}
	g, err := parsePosition("group", args[0])
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")

	added := false
	_, err = a.mutateSelected(ctx, func(app *models.Application) error {
		var err error
		added, err = app.Checklist.AddTask(g, text)
		return err
	})
	if err == nil && !added {
		a.println("Nothing added, the task text is empty.")
	}
	return err
}

func (a *App) removeTask(ctx context.Context, args []string) error {
	g, t, err := taskArgs(args, "rmtask <group> <task>")
	if err != nil {
		return err
	}
	app, err := a.selected()
	if err != nil {
		return err
	}
	if err := app.Checklist.RemoveTask(g, t); err != nil {
		return err
	}
	ok, err := Confirm(a.reader, "Remove this task?", a.out)
	if err != nil || !ok {
		return err
	}
	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.Checklist.RemoveTask(g, t)
	})
	return err
}

func (a *App) renameTask(ctx context.Context, args []string) error {
	const usage = "rename <group> <task> <text>"
	if err := needArgs(args, 3, usage); err != nil {
		return err
	}
	g, t, err := taskArgs(args[:2], usage)
	if err != nil {
		return err
	}
	text := strings.Join(args[2:], " ")
	_, err = a.mutateSelected(ctx, func(app *models.Application) error {
		return app.Checklist.RenameTask(g, t, text)
	})
	return err
}

func (a *App) checklistNotes(ctx context.Context, _ []string) error {
	app, err := a.selected()
	if err != nil {
		return err
	}
	if cur := app.Checklist.Notes(); cur != "" {
		a.println(cur)
	}
	text, err := GetMultiline(a.reader, "Notes & interview questions (replaces the text above)", a.out)
	if err != nil {
		return err
	}
	_, err = a.store.Update(ctx, app.ID, func(app *models.Application) error {
		return app.Checklist.SetNotes(text)
	})
	return err
}
