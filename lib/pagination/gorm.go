package pagination

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSource adapts a filtered GORM query to Source
type GormSource[T any] struct {
	query *gorm.DB
	order []clause.OrderByColumn
}

// FromQuery wraps query, which must already carry its model and WHERE
// clauses. The order columns are applied to Fetch only.
func FromQuery[T any](query *gorm.DB, order ...clause.OrderByColumn) *GormSource[T] {
	return &GormSource[T]{
		query: query.Session(&gorm.Session{}),
		order: order,
	}
}

// Count returns the number of rows matching the filter
func (s *GormSource[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.query.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, err
}

// Fetch returns at most limit rows starting at offset
func (s *GormSource[T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	rows := make([]T, 0, limit)
	q := s.query.WithContext(ctx)
	for _, column := range s.order {
		q = q.Order(column)
	}
	err := q.Offset(offset).Limit(limit).Find(&rows).Error
	return rows, err
}
