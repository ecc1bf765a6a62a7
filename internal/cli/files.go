package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/cryptox"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

var errPasswordMismatch = &common.ValidationError{Fields: []string{"password"}, Reason: "passwords do not match"}

func (a *App) attach(ctx context.Context, args []string) error {
	const usage = "attach <cover|resume> <path>"
	if err := needArgs(args, 2, usage); err != nil {
		return err
	}
	slot, err := models.ParseAttachmentSlot(args[0])
	if err != nil {
		return err
	}
	app, err := a.selected()
	if err != nil {
		return err
	}

	att, err := a.loader.Load(ctx, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	// The selection may have been deleted while the file was read.
	if err := a.store.AttachFile(ctx, app.ID, slot, att); err != nil {
		return err
	}
	a.println(fmt.Sprintf("Attached %s (%d bytes)", att.Name, att.Size))
	return nil
}

func (a *App) detach(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "detach <cover|resume>"); err != nil {
		return err
	}
	slot, err := models.ParseAttachmentSlot(args[0])
	if err != nil {
		return err
	}
	_, err = a.mutateSelected(ctx, func(app *models.Application) error {
		return app.Detach(slot)
	})
	return err
}

func (a *App) saveAttachment(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "saveatt <cover|resume>"); err != nil {
		return err
	}
	slot, err := models.ParseAttachmentSlot(args[0])
	if err != nil {
		return err
	}
	app, err := a.selected()
	if err != nil {
		return err
	}
	path, err := a.exports.SaveAttachment(ctx, app.Attachment(slot))
	if errors.Is(err, common.ErrNotFound) {
		return &common.ValidationError{Fields: []string{string(slot)}, Reason: models.NoFileUploaded}
	}
	if err != nil {
		return err
	}
	a.println("Saved to", path)
	return nil
}

// export writes a backup of every application; "-p" asks for a password
// and seals the file.
func (a *App) export(ctx context.Context, args []string) error {
	var password []byte
	if len(args) > 0 {
		if args[0] != "-p" {
			return errUsage("export [-p]")
		}
		pw, err := GetPassword(a.out, "Backup password")
		if err != nil {
			return err
		}
		again, err := GetPassword(a.out, "Repeat password")
		if err != nil {
			return err
		}
		defer cryptox.Wipe(again)
		if !bytes.Equal(pw, again) {
			cryptox.Wipe(pw)
			return errPasswordMismatch
		}
		password = pw
		defer cryptox.Wipe(password)
	}

	snapshot, err := a.store.ExportSnapshot()
	if err != nil {
		return err
	}
	path, err := a.exports.Backup(ctx, snapshot, password)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Backed up %d application(s) to %s", a.store.Len(), path))
	return nil
}

func (a *App) importBackup(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "import <file>"); err != nil {
		return err
	}
	path := strings.Join(args, " ")

	var password []byte
	defer func() { cryptox.Wipe(password) }()
	data, err := a.exports.ReadBackup(ctx, path, func() ([]byte, error) {
		pw, err := GetPassword(a.out, "Backup password")
		password = pw
		return pw, err
	})
	if err != nil {
		return err
	}
	apps, err := models.DecodeSnapshot(data)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Replace %d application(s) with %d from %s?", a.store.Len(), len(apps), path)
	ok, err := Confirm(a.reader, prompt, a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.store.ImportSnapshot(ctx, data); err != nil {
		return err
	}
	if a.selectedID != "" {
		if _, err := a.store.Get(a.selectedID); err != nil {
			a.selectedID = ""
		}
	}
	a.println(fmt.Sprintf("Imported %d application(s).", len(apps)))
	return nil
}

func (a *App) spreadsheet(ctx context.Context, _ []string) error {
	rows := views.SpreadsheetRows(a.store.List())
	path, err := a.exports.Spreadsheet(ctx, rows)
	if err != nil {
		return err
	}
	a.println(fmt.Sprintf("Exported %d row(s) to %s", len(rows), path))
	return nil
}
