package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides the basic read and write operations shared by every entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database and fills its generated fields.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetBy retrieves entities matching a condition such as "field = ?", ordered by order when given.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}, order string) ([]T, error) {
	var entities []T
	query := r.db.WithContext(ctx).Where(key, value)
	if order != "" {
		query = query.Order(order)
	}
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
