package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"tourcatalog-service/internal/domain/entity"

	"github.com/google/uuid"
)

type memTourRepo struct {
	mu      sync.Mutex
	tours   map[string]entity.Tour
	findErr error
	upserts int
}

func newMemTourRepo() *memTourRepo {
	return &memTourRepo{tours: map[string]entity.Tour{}}
}

func (r *memTourRepo) FindByID(ctx context.Context, id string) (*entity.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	t, ok := r.tours[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &t, nil
}

func (r *memTourRepo) Upsert(ctx context.Context, tour *entity.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tour.ID == "" {
		tour.ID = uuid.NewString()
	}
	for id, t := range r.tours {
		if id != tour.ID && t.Slug == tour.Slug {
			return entity.ErrDuplicateSlug
		}
	}
	r.upserts++
	r.tours[tour.ID] = *tour
	return nil
}

func (r *memTourRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.tours, id)
	return nil
}

func (r *memTourRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tours[id]
	if !ok {
		return entity.ErrNotFound
	}
	t.Status = status
	r.tours[id] = t
	return nil
}

type memChildRepo struct {
	mu        sync.Mutex
	rows      map[string][]entity.ChildRecord
	insertErr map[string]error
	inserts   int
	deletes   int
}

func newMemChildRepo() *memChildRepo {
	return &memChildRepo{rows: map[string][]entity.ChildRecord{}, insertErr: map[string]error{}}
}

func (r *memChildRepo) DeleteByRoot(ctx context.Context, c entity.Collection, rootID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	kept := r.rows[c.Table][:0]
	for _, row := range r.rows[c.Table] {
		if row[c.ForeignKey] != rootID {
			kept = append(kept, row)
		}
	}
	r.rows[c.Table] = kept
	return nil
}

func (r *memChildRepo) BulkInsert(ctx context.Context, c entity.Collection, records []entity.ChildRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.insertErr[c.Table]; err != nil {
		return err
	}
	r.inserts++
	r.rows[c.Table] = append(r.rows[c.Table], records...)
	return nil
}

func (r *memChildRepo) ListByRoot(ctx context.Context, c entity.Collection, rootID string) ([]entity.ChildRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ChildRecord
	for _, row := range r.rows[c.Table] {
		if row[c.ForeignKey] != rootID {
			continue
		}
		copied := entity.ChildRecord{}
		for k, v := range row {
			if k != entity.ColumnID && k != c.ForeignKey {
				copied[k] = v
			}
		}
		out = append(out, copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i][entity.ColumnSortOrder].(int) < out[j][entity.ColumnSortOrder].(int)
	})
	return out, nil
}

// raw returns the stored rows including reconciler-managed columns
func (r *memChildRepo) raw(c entity.Collection, rootID string) []entity.ChildRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ChildRecord
	for _, row := range r.rows[c.Table] {
		if row[c.ForeignKey] == rootID {
			out = append(out, row)
		}
	}
	return out
}

type memActivityRepo struct {
	mu      sync.Mutex
	entries []*entity.ActivityEntry
	err     error
	// rejectChanges fails entries carrying changes as unencodable
	rejectChanges bool
	appends       int
}

func (r *memActivityRepo) Append(ctx context.Context, entry *entity.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appends++
	if r.err != nil {
		return r.err
	}
	if r.rejectChanges && len(entry.Changes) > 0 {
		return fmt.Errorf("%w: unsupported value", entity.ErrUnencodable)
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memActivityRepo) List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.ActivityEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if filter.EntityType != "" && e.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID != "" && e.EntityID != filter.EntityID {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *memActivityRepo) all() []*entity.ActivityEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.ActivityEntry(nil), r.entries...)
}

type memCache struct {
	mu          sync.Mutex
	invalidated []string
	err         error
}

func (c *memCache) Invalidate(ctx context.Context, entityType, id, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, entityType+":"+id+":"+slug)
	return c.err
}

type memNotifier struct {
	mu    sync.Mutex
	sent  []*entity.Notification
	err   error
	label string
}

func (n *memNotifier) Channel() string {
	if n.label == "" {
		return "memory"
	}
	return n.label
}

func (n *memNotifier) Send(ctx context.Context, notification *entity.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}

func (n *memNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

var errStorage = errors.New("connection reset by peer")

type memCruiseRepo struct {
	mu      sync.Mutex
	cruises map[string]entity.Cruise
}

func newMemCruiseRepo() *memCruiseRepo {
	return &memCruiseRepo{cruises: map[string]entity.Cruise{}}
}

func (r *memCruiseRepo) FindByID(ctx context.Context, id string) (*entity.Cruise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cruises[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &c, nil
}

func (r *memCruiseRepo) Upsert(ctx context.Context, cruise *entity.Cruise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cruise.ID == "" {
		cruise.ID = uuid.NewString()
	}
	for id, c := range r.cruises {
		if id != cruise.ID && c.Slug == cruise.Slug {
			return entity.ErrDuplicateSlug
		}
	}
	r.cruises[cruise.ID] = *cruise
	return nil
}

func (r *memCruiseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cruises[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.cruises, id)
	return nil
}

func (r *memCruiseRepo) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cruises[id]
	if !ok {
		return entity.ErrNotFound
	}
	c.Status = status
	r.cruises[id] = c
	return nil
}
