// Package attachments reads cover letters and resumes from disk into
// embeddable attachments. Only PDF and Word documents are accepted; the
// content itself is never inspected.
package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var (
	ErrUnsupportedType = errors.New("only .pdf, .doc and .docx files are accepted")
	ErrTooLarge        = errors.New("file is too large")
	ErrNotRegular      = errors.New("not a regular file")
)

// Loader reads attachment files. A MaxSize of zero or less disables the
// size check.
type Loader struct {
	MaxSize int64
}

// Load reads the file at path. All failures are *common.AttachmentError.
func (l Loader) Load(ctx context.Context, path string) (models.Attachment, error) {
	fail := func(err error) (models.Attachment, error) {
		return models.Attachment{}, &common.AttachmentError{Path: path, Err: err}
	}

	path = strings.TrimSpace(path)
	mime, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fail(ErrUnsupportedType)
	}

	f, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fail(err)
	}
	if !fi.Mode().IsRegular() {
		return fail(ErrNotRegular)
	}
	if l.MaxSize > 0 && fi.Size() > l.MaxSize {
		return fail(fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, fi.Size(), l.MaxSize))
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	var r io.Reader = f
	if l.MaxSize > 0 {
		r = io.LimitReader(f, l.MaxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fail(err)
	}
	if l.MaxSize > 0 && int64(len(data)) > l.MaxSize {
		return fail(fmt.Errorf("%w: limit %d", ErrTooLarge, l.MaxSize))
	}

	return models.Attachment{
		Name:     filepath.Base(path),
		MimeType: mime,
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}
