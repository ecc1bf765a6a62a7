package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
)

// EncodeSnapshot serializes the whole collection as a JSON array. A nil
// collection is written as an empty array.
func EncodeSnapshot(apps []Application) ([]byte, error) {
	if apps == nil {
		apps = []Application{}
	}
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a JSON array of records, migrates records written by
// older versions and checks that ids are present and unique. Any problem is
// reported as a *common.ParseError.
func DecodeSnapshot(data []byte) ([]Application, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &common.ParseError{Source: "snapshot", Err: errors.New("expected a JSON array of applications")}
	}

	var apps []Application
	if err := json.Unmarshal(trimmed, &apps); err != nil {
		return nil, &common.ParseError{Source: "snapshot", Err: err}
	}
	if apps == nil {
		apps = []Application{}
	}

	seen := make(map[string]struct{}, len(apps))
	for i := range apps {
		a := &apps[i]
		if a.ID == "" {
			return nil, &common.ParseError{Source: "snapshot", Err: fmt.Errorf("application %d has no id", i)}
		}
		if _, dup := seen[a.ID]; dup {
			return nil, &common.ParseError{Source: "snapshot", Err: fmt.Errorf("duplicate application id %q", a.ID)}
		}
		seen[a.ID] = struct{}{}

		if err := a.migrate(); err != nil {
			return nil, &common.ParseError{Source: "snapshot", Err: fmt.Errorf("application %q: %w", a.ID, err)}
		}
	}
	return apps, nil
}

// normalizeEdits keeps only fields that are really being edited, gives each
// of them a draft and drops drafts nobody is editing.
func (a *Application) normalizeEdits() {
	for f, on := range a.Editing {
		acc, ok := editableFields[f]
		if !ok || !on {
			delete(a.Editing, f)
			continue
		}
		if _, has := a.Drafts[f]; !has {
			a.setDraft(f, acc.get(a))
		}
	}
	for f := range a.Drafts {
		if !a.Editing[f] {
			delete(a.Drafts, f)
		}
	}
	if len(a.Editing) == 0 {
		a.Editing = nil
	}
	if len(a.Drafts) == 0 {
		a.Drafts = nil
	}
}

// migrate brings a record written by an older version to the current shape:
// the singular interview becomes the first round, a missing status becomes
// StatusNotStarted, a missing checklist becomes the default one and a missing
// location type becomes remote. Edit flags without a draft get one.
func (a *Application) migrate() error {
	if a.Interview != nil {
		legacy := *a.Interview
		a.Interview = nil
		if !legacy.IsZero() && len(a.InterviewRounds) == 0 {
			if legacy.LocationType == "" {
				legacy.LocationType = LocationRemote
			}
			a.InterviewRounds = []InterviewRound{legacy}
		}
	}

	if a.Status == "" {
		a.Status = StatusNotStarted
	}
	if !a.Status.Valid() {
		st, err := ParseStatus(string(a.Status))
		if err != nil {
			return err
		}
		a.Status = st
	}

	if len(a.Checklist) == 0 {
		a.Checklist = DefaultChecklist()
	}

	for i := range a.InterviewRounds {
		if a.InterviewRounds[i].LocationType == "" {
			a.InterviewRounds[i].LocationType = LocationRemote
		}
	}

	a.normalizeEdits()
	return nil
}
