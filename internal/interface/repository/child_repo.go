package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormChildRepository implements the ChildRepository interface over any
// child table described by an entity.Collection
type GormChildRepository struct {
	db *gorm.DB
}

// NewGormChildRepository creates a new GORM child repository
func NewGormChildRepository(db *gorm.DB) repository.ChildRepository {
	return &GormChildRepository{
		db: db,
	}
}

// DeleteByRoot removes every row of the collection owned by rootID
func (r *GormChildRepository) DeleteByRoot(ctx context.Context, c entity.Collection, rootID string) error {
	return deleteChildren(r.db.WithContext(ctx), c, rootID)
}

// BulkInsert writes all records in a single statement
func (r *GormChildRepository) BulkInsert(ctx context.Context, c entity.Collection, records []entity.ChildRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Table(c.Table).Create(records).Error
}

// ListByRoot returns the rows of the collection in sort order
func (r *GormChildRepository) ListByRoot(ctx context.Context, c entity.Collection, rootID string) ([]entity.ChildRecord, error) {
	var rows []map[string]interface{}
	result := r.db.WithContext(ctx).
		Table(c.Table).
		Where(c.ForeignKey+" = ?", rootID).
		Order(entity.ColumnSortOrder).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]entity.ChildRecord, 0, len(rows))
	for _, row := range rows {
		delete(row, entity.ColumnID)
		delete(row, c.ForeignKey)
		for col, v := range row {
			if boxed, ok := v.(*interface{}); ok {
				row[col] = unbox(boxed)
			}
		}
		for _, col := range c.JSONColumns {
			row[col] = decodeJSON(row[col])
		}
		records = append(records, row)
	}
	return records, nil
}

func deleteChildren(db *gorm.DB, c entity.Collection, rootID string) error {
	return db.Exec("DELETE FROM "+c.Table+" WHERE "+c.ForeignKey+" = ?", rootID).Error
}

// decodeJSON turns a stored JSON column back into a value; drivers hand
// JSON back as either text or bytes, and map scans may leave it boxed.
func decodeJSON(v interface{}) interface{} {
	var data []byte
	switch raw := v.(type) {
	case *interface{}:
		return decodeJSON(unbox(raw))
	case []byte:
		data = raw
	case string:
		data = []byte(raw)
	default:
		return v
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return string(data)
	}
	return out
}

func unbox(v *interface{}) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// isDuplicateKey reports a unique constraint violation. TranslateError
// covers the registered dialects; the message check covers the rest.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
