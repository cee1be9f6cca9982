package usecase

import (
	"context"
	"errors"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/utils"
)

// TourService saves, reads, deletes and publishes tours
type TourService struct {
	tours    repository.TourRepository
	children repository.ChildRepository
	writer   *AggregateWriter
	effects  *SideEffects
	logger   logger.Logger
}

// NewTourService creates a new tour service
func NewTourService(tours repository.TourRepository, children repository.ChildRepository, writer *AggregateWriter, effects *SideEffects, logger logger.Logger) *TourService {
	return &TourService{
		tours:    tours,
		children: children,
		writer:   writer,
		effects:  effects,
		logger:   logger.With("component", "tour_service"),
	}
}

// Save creates the tour, or replaces it when the payload carries an existing id
func (s *TourService) Save(ctx context.Context, payload *entity.TourPayload, actor string) (string, error) {
	tour := payload.Tour()
	var old *entity.Tour

	id, err := s.writer.Save(ctx, SavePlan{
		EntityType: entity.EntityTour,
		Slug:       tour.Slug,
		Payload:    payload,
		Upsert: func(ctx context.Context) (string, error) {
			old = s.previous(ctx, tour.ID)
			if err := s.tours.Upsert(ctx, tour); err != nil {
				return "", err
			}
			return tour.ID, nil
		},
		Children: TourChildren(payload),
	})
	if err != nil {
		return "", err
	}

	m := Mutation{
		Action:     entity.ActionCreate,
		EntityType: entity.EntityTour,
		EntityID:   id,
		Title:      tour.Title,
		Slug:       tour.Slug,
		Status:     tour.Status,
		Actor:      actorOrDefault(actor),
		Old:        old.Snapshot(),
		New:        tour.Snapshot(),
		Labels:     entity.TourFieldLabels,
	}
	if old != nil {
		m.Action = entity.ActionUpdate
		m.PreviousSlug = old.Slug
		m.PreviousStatus = old.Status
	}
	s.effects.Apply(ctx, m)

	s.logger.Info("Tour saved", "id", id, "slug", tour.Slug, "action", m.Action)
	return id, nil
}

// TourChildren builds the collection batches of a tour payload in reconcile order
func TourChildren(p *entity.TourPayload) []ChildBatch {
	return []ChildBatch{
		{Collection: entity.TourItineraryDays, Rows: Rows(p.ItineraryDays)},
		{Collection: entity.TourLocations, Rows: Rows(DeriveLocations(p.ItineraryDays, p.Coordinates))},
		{Collection: entity.TourDepartures, Rows: Rows(p.Departures)},
		{Collection: entity.TourSupplements, Rows: Rows(p.Supplements)},
		{Collection: entity.TourInclusions, Rows: Rows(MergePolarity(p.Inclusions, p.Exclusions))},
		{Collection: entity.TourTerms, Rows: Rows(p.Terms)},
		{Collection: entity.TourPenalties, Rows: Rows(p.Penalties)},
		{Collection: entity.TourGallery, Rows: Rows(p.Gallery)},
		{Collection: entity.TourHotels, Rows: Rows(p.Hotels)},
	}
}

// Get loads the tour with every child collection
func (s *TourService) Get(ctx context.Context, id string) (*entity.TourDetail, error) {
	tour, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &entity.TourDetail{
		Tour:        tour,
		Collections: make(map[string][]entity.ChildRecord, len(entity.TourCollections)),
	}
	for _, c := range entity.TourCollections {
		records, err := s.children.ListByRoot(ctx, c, id)
		if err != nil {
			return nil, &entity.StorageError{Op: "list " + c.Table, Err: err}
		}
		detail.Collections[c.Name] = utils.NonNil(records)
	}
	return detail, nil
}

// Delete removes the tour and its collections
func (s *TourService) Delete(ctx context.Context, id, actor string) error {
	old, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tours.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &entity.NotFoundError{EntityType: entity.EntityTour, ID: id}
		}
		return &entity.StorageError{Op: "delete tour", Err: err}
	}

	s.effects.Apply(ctx, Mutation{
		Action:         entity.ActionDelete,
		EntityType:     entity.EntityTour,
		EntityID:       id,
		Title:          old.Title,
		Slug:           old.Slug,
		Status:         old.Status,
		PreviousStatus: old.Status,
		Actor:          actorOrDefault(actor),
		Old:            old.Snapshot(),
		Labels:         entity.TourFieldLabels,
	})

	s.logger.Info("Tour deleted", "id", id, "slug", old.Slug)
	return nil
}

// SetStatus publishes or unpublishes the tour
func (s *TourService) SetStatus(ctx context.Context, id string, status entity.Status, actor string) error {
	if !status.Valid() {
		return invalidStatus()
	}

	old, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tours.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return &entity.NotFoundError{EntityType: entity.EntityTour, ID: id}
		}
		return &entity.StorageError{Op: "update tour status", Err: err}
	}

	updated := *old
	updated.Status = status
	s.effects.Apply(ctx, Mutation{
		Action:         statusAction(status),
		EntityType:     entity.EntityTour,
		EntityID:       id,
		Title:          old.Title,
		Slug:           old.Slug,
		Status:         status,
		PreviousStatus: old.Status,
		Detail:         string(old.Status) + " -> " + string(status),
		Actor:          actorOrDefault(actor),
		Old:            old.Snapshot(),
		New:            updated.Snapshot(),
		Labels:         entity.TourFieldLabels,
	})

	s.logger.Info("Tour status changed", "id", id, "from", old.Status, "to", status)
	return nil
}

func (s *TourService) find(ctx context.Context, id string) (*entity.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, &entity.NotFoundError{EntityType: entity.EntityTour, ID: id}
		}
		return nil, &entity.StorageError{Op: "find tour", Err: err}
	}
	return tour, nil
}

// previous returns the stored tour before an update, or nil for a create.
// A failed lookup is logged and treated as a create for auditing.
func (s *TourService) previous(ctx context.Context, id string) *entity.Tour {
	if id == "" {
		return nil
	}
	old, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			s.logger.Warn("Failed to load previous tour for audit", "id", id, "error", err)
		}
		return nil
	}
	return old
}
