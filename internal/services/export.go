package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/cryptox"
	"github.com/dmitrijs2005/jobkeeper/internal/exporters"
	"github.com/dmitrijs2005/jobkeeper/internal/filex"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

// PasswordFunc supplies the password of a sealed backup on demand.
type PasswordFunc func() ([]byte, error)

// ExportService writes artifacts into the export directory.
type ExportService struct {
	dir string
	now func() time.Time
	log logging.Logger
}

func NewExportService(dir string, log logging.Logger) *ExportService {
	return &ExportService{dir: dir, now: time.Now, log: log}
}

// Dir returns the configured export directory.
func (s *ExportService) Dir() string {
	return s.dir
}

func (s *ExportService) write(ctx context.Context, name string, fn func(w io.Writer) error) (string, error) {
	dir, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := filex.WriteFileAtomic(path, fn); err != nil {
		return "", err
	}
	s.log.Info(ctx, "file written", "path", path)
	return path, nil
}

// Backup writes snapshot to a dated backup file. A non-empty password seals
// the file.
func (s *ExportService) Backup(ctx context.Context, snapshot, password []byte) (string, error) {
	data := snapshot
	if len(password) > 0 {
		sealed, err := cryptox.Seal(snapshot, password)
		if err != nil {
			return "", fmt.Errorf("seal backup: %w", err)
		}
		data = sealed
	}
	return s.write(ctx, exporters.BackupFileName(s.now()), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// ReadBackup returns the snapshot stored in the backup at path. password is
// only called for sealed files.
func (s *ExportService) ReadBackup(ctx context.Context, path string, password PasswordFunc) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	if !cryptox.IsSealed(data) {
		return data, nil
	}

	s.log.Debug(ctx, "backup is sealed", "path", path)
	pw, err := password()
	if err != nil {
		return nil, err
	}
	plain, err := cryptox.Open(data, pw)
	if errors.Is(err, cryptox.ErrWrongPassword) {
		return nil, &common.ParseError{Source: filepath.Base(path), Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("open sealed backup: %w", err)
	}
	return plain, nil
}

// Spreadsheet writes rows to the spreadsheet file.
func (s *ExportService) Spreadsheet(ctx context.Context, rows []views.SpreadsheetRow) (string, error) {
	return s.write(ctx, exporters.SpreadsheetFileName, func(w io.Writer) error {
		return exporters.WriteSpreadsheet(w, rows)
	})
}

// Calendar writes events to name in the export directory.
func (s *ExportService) Calendar(ctx context.Context, name string, events []views.CalendarEvent) (string, error) {
	if len(events) == 0 {
		return "", &common.ValidationError{Fields: []string{"interviews"}, Reason: "no scheduled interviews to export"}
	}
	return s.write(ctx, name, func(w io.Writer) error {
		return exporters.WriteCalendar(w, events, s.now())
	})
}

// SaveAttachment writes an embedded document back to disk under its
// original name.
func (s *ExportService) SaveAttachment(ctx context.Context, att *models.Attachment) (string, error) {
	if att == nil {
		return "", fmt.Errorf("attachment: %w", common.ErrNotFound)
	}
	name := filex.SafeName(att.Name)
	if name == "" {
		return "", &common.AttachmentError{Path: att.Name, Err: errors.New("attachment has no usable file name")}
	}
	return s.write(ctx, name, func(w io.Writer) error {
		_, err := w.Write(att.Data)
		return err
	})
}
