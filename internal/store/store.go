// Package store keeps the in-memory collection of job applications and
// mirrors every change to durable storage through a Persister.
//
// All mutating methods build the next collection from a copy, swap it in and
// then save it. A failed save keeps the new in-memory state and returns an
// error matching common.ErrPersistence, so the user can keep working and
// still sees that the disk copy is stale.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/views"
)

// Persister loads and saves the whole collection.
type Persister interface {
	Load(ctx context.Context) ([]models.Application, error)
	Save(ctx context.Context, apps []models.Application) error
}

// Store owns the ordered collection of applications.
type Store struct {
	mu        sync.RWMutex
	apps      []models.Application
	persister Persister
	log       logging.Logger
}

// New loads the collection once. A malformed stored payload is logged and
// replaced by an empty collection; any other load failure is returned.
func New(ctx context.Context, p Persister, log logging.Logger) (*Store, error) {
	s := &Store{persister: p, log: log, apps: []models.Application{}}

	apps, err := p.Load(ctx)
	switch {
	case errors.Is(err, common.ErrParse):
		log.Warn(ctx, "stored applications are unreadable, starting with an empty list", "error", err)
	case err != nil:
		return nil, fmt.Errorf("load applications: %w", err)
	case apps != nil:
		s.apps = apps
	}

	log.Info(ctx, "applications loaded", "count", len(s.apps))
	return s, nil
}

// commit swaps in next and saves it. Callers must hold s.mu.
func (s *Store) commit(ctx context.Context, next []models.Application) error {
	s.apps = next
	if err := s.persister.Save(ctx, cloneAll(next)); err != nil {
		s.log.Error(ctx, "failed to save applications", "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

// List returns copies of all records in display order.
func (s *Store) List() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.apps)
}

// Get returns a copy of the record with id.
func (s *Store) Get(id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := IndexOf(s.apps, id)
	if i < 0 {
		return models.Application{}, fmt.Errorf("application %s: %w", id, common.ErrNotFound)
	}
	return s.apps[i].Clone(), nil
}

// At returns a copy of the record at position i.
func (s *Store) At(i int) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := common.CheckIndex("application", i, len(s.apps)); err != nil {
		return models.Application{}, err
	}
	return s.apps[i].Clone(), nil
}

// Add creates a record from in and appends it.
func (s *Store) Add(ctx context.Context, in models.NewApplication) (models.Application, error) {
	a, err := models.New(in)
	if err != nil {
		return models.Application{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, Upsert(s.apps, a)); err != nil {
		return a.Clone(), err
	}
	s.log.Info(ctx, "application added", "id", a.ID, "company", a.Company)
	return a.Clone(), nil
}

// Upsert replaces the record with the same id or appends it.
func (s *Store) Upsert(ctx context.Context, a models.Application) error {
	if a.ID == "" {
		return &common.ValidationError{Fields: []string{"id"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, Upsert(s.apps, a.Clone()))
}

// Update applies fn to a copy of the record with id. When fn fails the
// stored record is left untouched and nothing is saved.
func (s *Store) Update(ctx context.Context, id string, fn func(*models.Application) error) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := IndexOf(s.apps, id)
	if i < 0 {
		return models.Application{}, fmt.Errorf("application %s: %w", id, common.ErrNotFound)
	}

	next := s.apps[i].Clone()
	if err := fn(&next); err != nil {
		return s.apps[i].Clone(), err
	}
	next.ID = id

	err := s.commit(ctx, Upsert(s.apps, next))
	return next.Clone(), err
}

// Reset restores the record with id to its defaults (see models.Application.Reset).
func (s *Store) Reset(ctx context.Context, id string) (models.Application, error) {
	return s.Update(ctx, id, func(a *models.Application) error {
		*a = a.Reset()
		return nil
	})
}

// AttachFile stores att in slot of the record with id. It is meant to be
// called when a file read completes: if the record was deleted in the
// meantime the attachment is dropped and common.ErrNotFound is returned.
func (s *Store) AttachFile(ctx context.Context, id string, slot models.AttachmentSlot, att models.Attachment) error {
	_, err := s.Update(ctx, id, func(a *models.Application) error {
		return a.Attach(slot, att)
	})
	if errors.Is(err, common.ErrNotFound) {
		s.log.Warn(ctx, "attachment dropped, application no longer exists", "id", id, "slot", slot)
	}
	return err
}

// Remove deletes the record with id. Removing an unknown id does nothing.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := Remove(s.apps, id)
	if !removed {
		return nil
	}
	s.log.Info(ctx, "application removed", "id", id)
	return s.commit(ctx, next)
}

// Reorder moves the record with id to newPosition.
func (s *Store) Reorder(ctx context.Context, id string, newPosition int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := IndexOf(s.apps, id)
	if from < 0 {
		return fmt.Errorf("application %s: %w", id, common.ErrNotFound)
	}
	return s.move(ctx, from, newPosition)
}

// Move moves the record at position from to position to, as reported by a
// drag gesture.
func (s *Store) Move(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.move(ctx, from, to)
}

func (s *Store) move(ctx context.Context, from, to int) error {
	if from == to {
		return common.CheckIndex("application", from, len(s.apps))
	}
	next, err := Move(s.apps, from, to)
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

// GroupByStatus partitions the records into status buckets.
func (s *Store) GroupByStatus() views.Board {
	return views.GroupByStatus(s.List())
}

// ExportSnapshot serializes the whole collection.
func (s *Store) ExportSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.EncodeSnapshot(s.apps)
}

// ImportSnapshot replaces the whole collection with the one encoded in data.
// A malformed snapshot returns a *common.ParseError and changes nothing.
func (s *Store) ImportSnapshot(ctx context.Context, data []byte) error {
	apps, err := models.DecodeSnapshot(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info(ctx, "applications imported", "count", len(apps), "replaced", len(s.apps))
	return s.commit(ctx, apps)
}
