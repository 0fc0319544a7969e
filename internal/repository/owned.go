package repository

import (
	"context"
	"errors"

	"coursework/internal/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FetchOwned looks up a record by raw id, scoped to its owner. A malformed
// id yields apperr.ErrInvalidID before any query runs. A missing row yields
// apperr.ErrNotFound whether the record is absent or owned by someone else;
// callers cannot tell the two apart.
func FetchOwned[T any](ctx context.Context, db *gorm.DB, rawID string, ownerID uuid.UUID) (*T, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}

	var out T
	if err := db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
