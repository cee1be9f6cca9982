package usecase

import (
	"context"
	"errors"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/utils"
)

// CruiseService saves, reads, deletes and publishes cruises
type CruiseService struct {
	cruises  repository.CruiseRepository
	children repository.ChildRepository
	writer   *AggregateWriter
	effects  *SideEffects
	logger   logger.Logger
}

// NewCruiseService creates a new cruise service
func NewCruiseService(cruises repository.CruiseRepository, children repository.ChildRepository, writer *AggregateWriter, effects *SideEffects, logger logger.Logger) *CruiseService {
	return &CruiseService{
		cruises:  cruises,
		children: children,
		writer:   writer,
		effects:  effects,
		logger:   logger.With("component", "cruise_service"),
	}
}

// Save creates the cruise, or replaces it when the payload carries an existing id
func (s *CruiseService) Save(ctx context.Context, payload *entity.CruisePayload, actor string) (string, error) {
	cruise := payload.Cruise()
	var old *entity.Cruise

	id, err := s.writer.Save(ctx, SavePlan{
		EntityType: entity.EntityCruise,
		Slug:       cruise.Slug,
		Payload:    payload,
		Upsert: func(ctx context.Context) (string, error) {
			old = s.previous(ctx, cruise.ID)
			if err := s.cruises.Upsert(ctx, cruise); err != nil {
				return "", err
			}
			return cruise.ID, nil
		},
		Children: CruiseChildren(payload),
	})
	if err != nil {
		return "", err
	}

	m := Mutation{
		Action:     entity.ActionCreate,
		EntityType: entity.EntityCruise,
		EntityID:   id,
		Title:      cruise.Title,
		Slug:       cruise.Slug,
		Status:     cruise.Status,
		Actor:      actorOrDefault(actor),
		Old:        old.Snapshot(),
		New:        cruise.Snapshot(),
		Labels:     entity.CruiseFieldLabels,
	}
	if old != nil {
		m.Action = entity.ActionUpdate
		m.PreviousSlug = old.Slug
		m.PreviousStatus = old.Status
	}
	s.effects.Apply(ctx, m)

	s.logger.Info("Cruise saved", "id", id, "slug", cruise.Slug, "action", m.Action)
	return id, nil
}

// CruiseChildren builds the collection batches of a cruise payload in reconcile order
func CruiseChildren(p *entity.CruisePayload) []ChildBatch {
	return []ChildBatch{
		{Collection: entity.CruiseItineraryDays, Rows: Rows(p.ItineraryDays)},
		{Collection: entity.CruiseLocations, Rows: Rows(DeriveLocations(p.ItineraryDays, p.Coordinates))},
		{Collection: entity.CruiseDepartures, Rows: Rows(p.Departures)},
		{Collection: entity.CruiseSupplements, Rows: Rows(p.Supplements)},
		{Collection: entity.CruiseInclusions, Rows: Rows(MergePolarity(p.Inclusions, p.Exclusions))},
		{Collection: entity.CruiseTerms, Rows: Rows(p.Terms)},
		{Collection: entity.CruisePenalties, Rows: Rows(p.Penalties)},
		{Collection: entity.CruiseGallery, Rows: Rows(p.Gallery)},
		{Collection: entity.CruiseCabins, Rows: Rows(p.Cabins)},
	}
}

// Get loads the cruise with every child collection
func (s *CruiseService) Get(ctx context.Context, id string) (*entity.CruiseDetail, error) {
	cruise, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &entity.CruiseDetail{
		Cruise:      cruise,
		Collections: make(map[string][]entity.ChildRecord, len(entity.CruiseCollections)),
	}
	for _, c := range entity.CruiseCollections {
		records, err := s.children.ListByRoot(ctx, c, id)
		if err != nil {
			return nil, &entity.StorageError{Op: "list " + c.Table, Err: err}
		}
		detail.Collections[c.Name] = utils.NonNil(records)
	}
	return detail, nil
}

// Delete removes the cruise and its collections
func (s *CruiseService) Delete(ctx context.Context, id, actor string) error {
	old, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cruises.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &entity.NotFoundError{EntityType: entity.EntityCruise, ID: id}
		}
		return &entity.StorageError{Op: "delete cruise", Err: err}
	}

	s.effects.Apply(ctx, Mutation{
		Action:         entity.ActionDelete,
		EntityType:     entity.EntityCruise,
		EntityID:       id,
		Title:          old.Title,
		Slug:           old.Slug,
		Status:         old.Status,
		PreviousStatus: old.Status,
		Actor:          actorOrDefault(actor),
		Old:            old.Snapshot(),
		Labels:         entity.CruiseFieldLabels,
	})

	s.logger.Info("Cruise deleted", "id", id, "slug", old.Slug)
	return nil
}

// SetStatus publishes or unpublishes the cruise
func (s *CruiseService) SetStatus(ctx context.Context, id string, status entity.Status, actor string) error {
	if !status.Valid() {
		return invalidStatus()
	}

	old, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cruises.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &entity.NotFoundError{EntityType: entity.EntityCruise, ID: id}
		}
		return &entity.StorageError{Op: "update cruise status", Err: err}
	}

	updated := *old
	updated.Status = status
	s.effects.Apply(ctx, Mutation{
		Action:         statusAction(status),
		EntityType:     entity.EntityCruise,
		EntityID:       id,
		Title:          old.Title,
		Slug:           old.Slug,
		Status:         status,
		PreviousStatus: old.Status,
		Detail:         string(old.Status) + " -> " + string(status),
		Actor:          actorOrDefault(actor),
		Old:            old.Snapshot(),
		New:            updated.Snapshot(),
		Labels:         entity.CruiseFieldLabels,
	})

	s.logger.Info("Cruise status changed", "id", id, "from", old.Status, "to", status)
	return nil
}

func (s *CruiseService) find(ctx context.Context, id string) (*entity.Cruise, error) {
	cruise, err := s.cruises.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &entity.NotFoundError{EntityType: entity.EntityCruise, ID: id}
		}
		return nil, &entity.StorageError{Op: "find cruise", Err: err}
	}
	return cruise, nil
}

// previous returns the stored cruise before an update, or nil for a create.
// A failed lookup is logged and treated as a create for auditing.
func (s *CruiseService) previous(ctx context.Context, id string) *entity.Cruise {
	if id == "" {
		return nil
	}
	old, err := s.cruises.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			s.logger.Warn("Failed to load previous cruise for audit", "id", id, "error", err)
		}
		return nil
	}
	return old
}
