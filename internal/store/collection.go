package store

import (
	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
)

// The functions below never modify their input; they return a new slice
// header and share record values with the input.

// IndexOf returns the position of the record with id, or -1.
func IndexOf(apps []models.Application, id string) int {
	for i := range apps {
		if apps[i].ID == id {
			return i
		}
	}
	return -1
}

// Upsert replaces the record with the same id or appends a.
func Upsert(apps []models.Application, a models.Application) []models.Application {
	out := make([]models.Application, len(apps), len(apps)+1)
	copy(out, apps)
	if i := IndexOf(out, a.ID); i >= 0 {
		out[i] = a
		return out
	}
	return append(out, a)
}

// Remove drops the record with id. removed is false when no record matched.
func Remove(apps []models.Application, id string) (out []models.Application, removed bool) {
	i := IndexOf(apps, id)
	if i < 0 {
		return apps, false
	}
	out = make([]models.Application, 0, len(apps)-1)
	out = append(out, apps[:i]...)
	return append(out, apps[i+1:]...), true
}

// Move moves the record at from to position to, shifting the records in
// between. Moving a record onto its own position returns the input as is.
func Move(apps []models.Application, from, to int) ([]models.Application, error) {
	if err := common.CheckIndex("application", from, len(apps)); err != nil {
		return apps, err
	}
	if err := common.CheckIndex("position", to, len(apps)); err != nil {
		return apps, err
	}
	if from == to {
		return apps, nil
	}

	out := make([]models.Application, 0, len(apps))
	moved := apps[from]
	for i := range apps {
		if i == from {
			continue
		}
		if i == to && to < from {
			out = append(out, moved)
		}
		out = append(out, apps[i])
		if i == to && to > from {
			out = append(out, moved)
		}
	}
	return out, nil
}

func cloneAll(apps []models.Application) []models.Application {
	out := make([]models.Application, len(apps))
	for i := range apps {
		out[i] = apps[i].Clone()
	}
	return out
}
