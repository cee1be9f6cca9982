package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTourRepository implements the TourRepository interface
type GormTourRepository struct {
	db *gorm.DB
}

// NewGormTourRepository creates a new GORM tour repository
func NewGormTourRepository(db *gorm.DB) repository.TourRepository {
	return &GormTourRepository{
		db: db,
	}
}

var tourUpdateColumns = []string{
	"title", "slug", "subtitle", "description", "destination", "duration_days", "price_from",
	"currency", "cover_image", "meeting_point", "notes", "status", "updated_at",
}

// FindByID finds a tour by id
func (r *GormTourRepository) FindByID(ctx context.Context, id string) (*entity.Tour, error) {
	var model Tours
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.Tour{
		ID:           model.ID,
		Title:        model.Title,
		Slug:         model.Slug,
		Subtitle:     model.Subtitle,
		Description:  model.Description,
		Destination:  model.Destination,
		DurationDays: model.DurationDays,
		PriceFrom:    model.PriceFrom,
		Currency:     model.Currency,
		CoverImage:   model.CoverImage,
		MeetingPoint: model.MeetingPoint,
		Notes:        model.Notes,
		Status:       entity.Status(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

// Upsert inserts the tour or updates it in place by id
func (r *GormTourRepository) Upsert(ctx context.Context, tour *entity.Tour) error {
	if tour.ID == "" {
		tour.ID = uuid.NewString()
	}

	model := Tours{
		ID:           tour.ID,
		Title:        tour.Title,
		Slug:         tour.Slug,
		Subtitle:     tour.Subtitle,
		Description:  tour.Description,
		Destination:  tour.Destination,
		DurationDays: tour.DurationDays,
		PriceFrom:    tour.PriceFrom,
		Currency:     tour.Currency,
		CoverImage:   tour.CoverImage,
		MeetingPoint: tour.MeetingPoint,
		Notes:        tour.Notes,
		Status:       string(tour.Status),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(tourUpdateColumns),
	}).Create(&model)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return entity.ErrDuplicateSlug
		}
		return result.Error
	}

	tour.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes the tour and its child rows in one transaction
func (r *GormTourRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range entity.TourCollections {
			if err := deleteChildren(tx, c, id); err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(&Tours{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

// UpdateStatus changes only the publication status
func (r *GormTourRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	result := r.db.WithContext(ctx).Model(&Tours{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update tour status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
