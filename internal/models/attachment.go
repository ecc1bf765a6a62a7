package models

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// AttachmentSlot names one of the two documents an application can carry.
type AttachmentSlot string

const (
	SlotCoverLetter AttachmentSlot = "coverLetter"
	SlotResume      AttachmentSlot = "resume"
)

// NoFileUploaded is shown in place of a missing attachment.
const NoFileUploaded = "No file uploaded"

// ParseAttachmentSlot accepts the slot names plus the short forms "cover"
// and "cv".
func ParseAttachmentSlot(s string) (AttachmentSlot, error) {
	switch normalizeStatus(s) {
	case "coverletter", "cover":
		return SlotCoverLetter, nil
	case "resume", "cv":
		return SlotResume, nil
	}
	return "", &common.ValidationError{
		Fields: []string{"slot"},
		Reason: fmt.Sprintf("unknown attachment slot %q (want cover or resume)", s),
	}
}

// Attachment is a document embedded into the record. The payload is stored
// inline so it survives restarts and travels with backups.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Data     []byte `json:"data"`
}

// Clone returns a deep copy of a, nil-safe.
func (a *Attachment) Clone() *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	c.Data = bytes.Clone(a.Data)
	return &c
}

// DisplayName returns the file name or NoFileUploaded.
func (a *Attachment) DisplayName() string {
	if a == nil || a.Name == "" {
		return NoFileUploaded
	}
	return a.Name
}
