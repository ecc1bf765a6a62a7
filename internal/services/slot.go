package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/common"
	"github.com/dmitrijs2005/jobkeeper/internal/logging"
	"github.com/dmitrijs2005/jobkeeper/internal/models"
	"github.com/dmitrijs2005/jobkeeper/internal/repositories/slots"
)

// ApplicationsKey is the slot holding the application collection.
const ApplicationsKey = "jobApplications"

// corruptSuffix and a UTC timestamp are appended to the key of a payload
// that failed to decode.
const corruptSuffix = ".corrupt."

// SlotDB is the part of storage.Database the gateway needs.
type SlotDB interface {
	Slots() slots.Repository
	InTx(ctx context.Context, fn func(ctx context.Context, repo slots.Repository) error) error
}

// SlotGateway loads and saves the whole collection as one JSON payload in a
// named slot. It implements store.Persister.
type SlotGateway struct {
	db  SlotDB
	key string
	now func() time.Time
	log logging.Logger
}

func NewSlotGateway(db SlotDB, key string, log logging.Logger) *SlotGateway {
	return &SlotGateway{db: db, key: key, now: time.Now, log: log.With("slot", key)}
}

// Load returns the stored collection, or an empty one when the slot was
// never written. A payload that cannot be decoded is moved to
// "<key>.corrupt.<timestamp>" and a *common.ParseError is returned, so the
// next save does not overwrite the only copy. Earlier quarantined payloads
// are never replaced.
func (g *SlotGateway) Load(ctx context.Context) ([]models.Application, error) {
	data, err := g.db.Slots().Get(ctx, g.key)
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}
	if data == nil {
		g.log.Debug(ctx, "slot is empty")
		return []models.Application{}, nil
	}

	apps, err := models.DecodeSnapshot(data)
	if err == nil {
		return apps, nil
	}
	if !errors.Is(err, common.ErrParse) {
		return nil, err
	}

	var backup string
	qerr := g.db.InTx(ctx, func(ctx context.Context, repo slots.Repository) error {
		var err error
		if backup, err = g.quarantineKey(ctx, repo); err != nil {
			return err
		}
		if err := repo.Set(ctx, backup, data); err != nil {
			return err
		}
		return repo.Delete(ctx, g.key)
	})
	if qerr != nil {
		return nil, fmt.Errorf("quarantine unreadable slot: %w", qerr)
	}
	g.log.Warn(ctx, "unreadable payload moved aside", "moved_to", backup, "bytes", len(data), "error", err)
	return nil, err
}

// quarantineKey returns an unused key for a corrupt payload.
func (g *SlotGateway) quarantineKey(ctx context.Context, repo slots.Repository) (string, error) {
	base := g.key + corruptSuffix + g.now().UTC().Format("20060102T150405Z")
	key := base
	for n := 2; ; n++ {
		existing, err := repo.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return key, nil
		}
		key = fmt.Sprintf("%s-%d", base, n)
	}
}

// Save replaces the stored collection.
func (g *SlotGateway) Save(ctx context.Context, apps []models.Application) error {
	data, err := models.EncodeSnapshot(apps)
	if err != nil {
		return err
	}
	if err := g.db.Slots().Set(ctx, g.key, data); err != nil {
		return fmt.Errorf("save applications: %w", err)
	}
	g.log.Debug(ctx, "applications saved", "count", len(apps), "bytes", len(data))
	return nil
}
