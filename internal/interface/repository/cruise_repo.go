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

// GormCruiseRepository implements the CruiseRepository interface
type GormCruiseRepository struct {
	db *gorm.DB
}

// NewGormCruiseRepository creates a new GORM cruise repository
func NewGormCruiseRepository(db *gorm.DB) repository.CruiseRepository {
	return &GormCruiseRepository{
		db: db,
	}
}

var cruiseUpdateColumns = []string{
	"title", "slug", "ship_name", "river", "description", "duration_nights", "price_from",
	"currency", "embark_port", "disembark_port", "cover_image", "notes", "status", "updated_at",
}

// FindByID finds a cruise by id
func (r *GormCruiseRepository) FindByID(ctx context.Context, id string) (*entity.Cruise, error) {
	var model Cruises
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, result.Error
	}

	return &entity.Cruise{
		ID:             model.ID,
		Title:          model.Title,
		Slug:           model.Slug,
		ShipName:       model.ShipName,
		River:          model.River,
		Description:    model.Description,
		DurationNights: model.DurationNights,
		PriceFrom:      model.PriceFrom,
		Currency:       model.Currency,
		EmbarkPort:     model.EmbarkPort,
		DisembarkPort:  model.DisembarkPort,
		CoverImage:     model.CoverImage,
		Notes:          model.Notes,
		Status:         entity.Status(model.Status),
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}

// Upsert inserts the cruise or updates it in place by id
func (r *GormCruiseRepository) Upsert(ctx context.Context, cruise *entity.Cruise) error {
	if cruise.ID == "" {
		cruise.ID = uuid.NewString()
	}

	model := Cruises{
		ID:             cruise.ID,
		Title:          cruise.Title,
		Slug:           cruise.Slug,
		ShipName:       cruise.ShipName,
		River:          cruise.River,
		Description:    cruise.Description,
		DurationNights: cruise.DurationNights,
		PriceFrom:      cruise.PriceFrom,
		Currency:       cruise.Currency,
		EmbarkPort:     cruise.EmbarkPort,
		DisembarkPort:  cruise.DisembarkPort,
		CoverImage:     cruise.CoverImage,
		Notes:          cruise.Notes,
		Status:         string(cruise.Status),
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(cruiseUpdateColumns),
	}).Create(&model)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return entity.ErrDuplicateSlug
		}
		return result.Error
	}

	cruise.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes the cruise and its child rows in one transaction
func (r *GormCruiseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range entity.CruiseCollections {
			if err := deleteChildren(tx, c, id); err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(&Cruises{})
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
func (r *GormCruiseRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	result := r.db.WithContext(ctx).Model(&Cruises{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update cruise status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
