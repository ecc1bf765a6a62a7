package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/google/uuid"
)

// DateLayout is the layout of calendar dates stored on records and rounds.
const DateLayout = "2006-01-02"

// EditableField names a field that supports in-place editing.
type EditableField string

const (
	FieldTitle    EditableField = "title"
	FieldCompany  EditableField = "company"
	FieldJobReqID EditableField = "jobReqId"
	FieldJobLink  EditableField = "jobLink"
)

// EditableFields lists the in-place editable fields in display order.
var EditableFields = []EditableField{FieldTitle, FieldCompany, FieldJobReqID, FieldJobLink}

type fieldAccess struct {
	get      func(*Application) string
	set      func(*Application, string)
	required bool
}

var editableFields = map[EditableField]fieldAccess{
	FieldTitle: {
		get:      func(a *Application) string { return a.Title },
		set:      func(a *Application, v string) { a.Title = v },
		required: true,
	},
	FieldCompany: {
		get:      func(a *Application) string { return a.Company },
		set:      func(a *Application, v string) { a.Company = v },
		required: true,
	},
	FieldJobReqID: {
		get: func(a *Application) string { return a.JobReqID },
		set: func(a *Application, v string) { a.JobReqID = v },
	},
	FieldJobLink: {
		get: func(a *Application) string { return a.JobLink },
		set: func(a *Application, v string) { a.JobLink = v },
	},
}

// ParseEditableField accepts a field name in any case ("jobreqid", "job-link").
func ParseEditableField(s string) (EditableField, error) {
	n := normalizeStatus(s)
	for _, f := range EditableFields {
		if strings.ToLower(string(f)) == n {
			return f, nil
		}
	}
	return "", &common.ValidationError{
		Fields: []string{"field"},
		Reason: fmt.Sprintf("unknown field %q", s),
	}
}

func accessFor(f EditableField) (fieldAccess, error) {
	acc, ok := editableFields[f]
	if !ok {
		return fieldAccess{}, &common.ValidationError{
			Fields: []string{"field"},
			Reason: fmt.Sprintf("unknown field %q", f),
		}
	}
	return acc, nil
}

// Application is one tracked job application.
type Application struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Date    string `json:"date"`
	Status  Status `json:"status"`

	JobReqID string `json:"jobReqId"`
	JobLink  string `json:"jobLink"`

	Checklist Checklist `json:"checklist"`
	Notes     string    `json:"notes"`

	CoverLetter *Attachment `json:"coverLetter"`
	Resume      *Attachment `json:"resume"`

	// Editing marks fields that are in the in-place edit state, Drafts holds
	// their uncommitted values.
	Editing map[EditableField]bool   `json:"editing"`
	Drafts  map[EditableField]string `json:"drafts"`

	InterviewRounds []InterviewRound `json:"interviewRounds"`

	// Interview is the single-round shape written by older versions. It is
	// folded into InterviewRounds when a snapshot is decoded.
	Interview *InterviewRound `json:"interview,omitempty"`
}

// legacyDrafts are the per-field drafts older versions stored next to a
// single boolean "editing" flag.
type legacyDrafts struct {
	EditTitle    *string `json:"editTitle"`
	EditCompany  *string `json:"editCompany"`
	EditJobReqID *string `json:"editJobReqId"`
	EditJobLink  *string `json:"editJobLink"`
}

func (l legacyDrafts) draft(f EditableField) *string {
	switch f {
	case FieldTitle:
		return l.EditTitle
	case FieldCompany:
		return l.EditCompany
	case FieldJobReqID:
		return l.EditJobReqID
	case FieldJobLink:
		return l.EditJobLink
	}
	return nil
}

// UnmarshalJSON accepts "editing" either as a per-field object or as the
// boolean written by older versions. A true flag puts every editable field
// in the edit state, with the stored editX value as its draft when present.
func (a *Application) UnmarshalJSON(data []byte) error {
	type plain Application
	var aux struct {
		plain
		legacyDrafts
		Editing json.RawMessage `json:"editing"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*a = Application(aux.plain)
	a.Editing = nil

	raw := bytes.TrimSpace(aux.Editing)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
	case bytes.Equal(raw, []byte("true")):
		a.Editing = make(map[EditableField]bool, len(EditableFields))
		if a.Drafts == nil {
			a.Drafts = make(map[EditableField]string, len(EditableFields))
		}
		for _, f := range EditableFields {
			a.Editing[f] = true
			if d := aux.legacyDrafts.draft(f); d != nil {
				a.Drafts[f] = *d
			}
		}
	default:
		if err := json.Unmarshal(raw, &a.Editing); err != nil {
			return fmt.Errorf("editing: %w", err)
		}
	}
	return nil
}

// NewApplication carries the fields required to create a record.
type NewApplication struct {
	Title   string
	Company string
	Date    string
}

// New validates in and returns a record with a fresh id, the default
// checklist and status StatusNotStarted.
func New(in NewApplication) (Application, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Date = strings.TrimSpace(in.Date)

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Company == "" {
		missing = append(missing, "company")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return Application{}, &common.ValidationError{Fields: missing}
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return Application{}, &common.ValidationError{Fields: []string{"date"}, Reason: "want YYYY-MM-DD"}
	}

	return Application{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Company:   in.Company,
		Date:      in.Date,
		Status:    StatusNotStarted,
		Checklist: DefaultChecklist(),
	}, nil
}

// Clone returns a deep copy of a.
func (a Application) Clone() Application {
	c := a
	c.Checklist = a.Checklist.Clone()
	c.CoverLetter = a.CoverLetter.Clone()
	c.Resume = a.Resume.Clone()
	c.Editing = maps.Clone(a.Editing)
	c.Drafts = maps.Clone(a.Drafts)
	if a.InterviewRounds != nil {
		c.InterviewRounds = append(make([]InterviewRound, 0, len(a.InterviewRounds)), a.InterviewRounds...)
	}
	if a.Interview != nil {
		r := *a.Interview
		c.Interview = &r
	}
	return c
}

// Progress returns the checklist completion percentage.
func (a Application) Progress() int {
	return a.Checklist.Progress()
}

// Reset returns a copy of a with a fresh default checklist and with status,
// job req id, job link, attachments and notes cleared. Id, title, company,
// date and interview rounds are kept.
func (a Application) Reset() Application {
	r := a.Clone()
	r.Checklist = DefaultChecklist()
	r.Status = StatusNotStarted
	r.JobReqID = ""
	r.JobLink = ""
	r.CoverLetter = nil
	r.Resume = nil
	r.Notes = ""
	r.endEdit(FieldJobReqID)
	r.endEdit(FieldJobLink)
	return r
}

// SetStatus changes the status after validating it.
func (a *Application) SetStatus(s Status) error {
	if !s.Valid() {
		return &common.ValidationError{Fields: []string{"status"}, Reason: fmt.Sprintf("unknown status %q", s)}
	}
	a.Status = s
	return nil
}

// IsEditing reports whether f is in the edit state.
func (a Application) IsEditing(f EditableField) bool {
	return a.Editing[f]
}

// Draft returns the uncommitted value of f.
func (a Application) Draft(f EditableField) (string, bool) {
	if !a.Editing[f] {
		return "", false
	}
	return a.Drafts[f], true
}

// Value returns the committed value of f.
func (a Application) Value(f EditableField) (string, error) {
	acc, err := accessFor(f)
	if err != nil {
		return "", err
	}
	return acc.get(&a), nil
}

// BeginEdit moves f into the edit state with the committed value as the
// draft. Beginning an edit that is already in progress keeps its draft.
func (a *Application) BeginEdit(f EditableField) error {
	acc, err := accessFor(f)
	if err != nil {
		return err
	}
	if a.Editing[f] {
		return nil
	}
	if a.Editing == nil {
		a.Editing = make(map[EditableField]bool)
	}
	a.Editing[f] = true
	a.setDraft(f, acc.get(a))
	return nil
}

// UpdateDraft replaces the draft of f without touching the committed value.
func (a *Application) UpdateDraft(f EditableField, v string) error {
	if _, err := accessFor(f); err != nil {
		return err
	}
	if !a.Editing[f] {
		return fmt.Errorf("%s: %w", f, common.ErrNotEditing)
	}
	a.setDraft(f, v)
	return nil
}

func (a *Application) setDraft(f EditableField, v string) {
	if a.Drafts == nil {
		a.Drafts = make(map[EditableField]string)
	}
	a.Drafts[f] = v
}

// CommitEdit stores v as the committed value of f and leaves the edit state.
// Required fields reject an empty value and stay in the edit state with v as
// the draft.
func (a *Application) CommitEdit(f EditableField, v string) error {
	acc, err := accessFor(f)
	if err != nil {
		return err
	}
	if !a.Editing[f] {
		return fmt.Errorf("%s: %w", f, common.ErrNotEditing)
	}
	v = strings.TrimSpace(v)
	if acc.required && v == "" {
		a.setDraft(f, v)
		return &common.ValidationError{Fields: []string{string(f)}}
	}
	acc.set(a, v)
	a.endEdit(f)
	return nil
}

// CancelEdit discards the draft of f. It is a no-op when f is not being
// edited.
func (a *Application) CancelEdit(f EditableField) error {
	if _, err := accessFor(f); err != nil {
		return err
	}
	a.endEdit(f)
	return nil
}

func (a *Application) endEdit(f EditableField) {
	delete(a.Editing, f)
	delete(a.Drafts, f)
	if len(a.Editing) == 0 {
		a.Editing = nil
	}
	if len(a.Drafts) == 0 {
		a.Drafts = nil
	}
}

// AddInterviewRound appends an empty round and returns its index.
func (a *Application) AddInterviewRound() int {
	a.InterviewRounds = append(a.InterviewRounds, NewInterviewRound())
	return len(a.InterviewRounds) - 1
}

// RemoveInterviewRound deletes round i.
func (a *Application) RemoveInterviewRound(i int) error {
	if err := common.CheckIndex("interview round", i, len(a.InterviewRounds)); err != nil {
		return err
	}
	rounds := a.InterviewRounds
	a.InterviewRounds = append(rounds[:i:i], rounds[i+1:]...)
	return nil
}

// SetInterviewRound replaces round i after validating it.
func (a *Application) SetInterviewRound(i int, r InterviewRound) error {
	if err := common.CheckIndex("interview round", i, len(a.InterviewRounds)); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	a.InterviewRounds[i] = r
	return nil
}

// Attachment returns the attachment stored in slot, or nil.
func (a Application) Attachment(slot AttachmentSlot) *Attachment {
	switch slot {
	case SlotCoverLetter:
		return a.CoverLetter
	case SlotResume:
		return a.Resume
	}
	return nil
}

// Attach stores att in slot, replacing any previous document.
func (a *Application) Attach(slot AttachmentSlot, att Attachment) error {
	switch slot {
	case SlotCoverLetter:
		a.CoverLetter = &att
	case SlotResume:
		a.Resume = &att
	default:
		return &common.ValidationError{Fields: []string{"slot"}, Reason: fmt.Sprintf("unknown attachment slot %q", slot)}
	}
	return nil
}

// Detach clears slot.
func (a *Application) Detach(slot AttachmentSlot) error {
	switch slot {
	case SlotCoverLetter:
		a.CoverLetter = nil
	case SlotResume:
		a.Resume = nil
	default:
		return &common.ValidationError{Fields: []string{"slot"}, Reason: fmt.Sprintf("unknown attachment slot %q", slot)}
	}
	return nil
}
