package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Repository provides the basic operations of a single table. M is the gorm
// model of the table and must carry `id` and `created_at` columns.
type Repository[M any] struct {
	db   *gorm.DB
	name string
}

func NewRepository[M any](db *gorm.DB, name string) Repository[M] {
	return Repository[M]{db: db, name: name}
}

// With returns a copy of the repository bound to a transaction
func (r Repository[M]) With(tx *gorm.DB) Repository[M] {
	r.db = tx
	return r
}

func (r Repository[M]) GetByID(id uuid.UUID) (*M, error) {
	return r.GetBy(map[string]interface{}{"id": id})
}

// GetBy returns the first row matching every column = value pair
func (r Repository[M]) GetBy(conditions map[string]interface{}) (*M, error) {
	var m M
	if err := r.db.Where(conditions).First(&m).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("%s %v", r.name, conditions))
	}
	return &m, nil
}

func (r Repository[M]) GetMany(limit, offset int) ([]M, error) {
	ms := []M{}
	if err := r.db.Order("created_at, id").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, translate(err, r.name)
	}
	return ms, nil
}

func (r Repository[M]) Create(m *M) error {
	return translate(r.db.Create(m).Error, r.name)
}

// Update overwrites the given columns of a row
func (r Repository[M]) Update(id uuid.UUID, columns map[string]interface{}) (*M, error) {
	result := r.db.Model(new(M)).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return nil, translate(result.Error, r.name)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s with id %s", ErrNotFound, r.name, id)
	}

	return r.GetByID(id)
}

func (r Repository[M]) DeleteByID(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return translate(result.Error, r.name)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s with id %s", ErrNotFound, r.name, id)
	}

	return nil
}
