package mysql

import (
	"context"

	itemDomain "rentify-backend/internal/domain/item"

	"gorm.io/gorm"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).Where("item_id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) List(ctx context.Context, includeDisabled bool) ([]itemDomain.Item, error) {
	q := r.db.WithContext(ctx).Order("item_id")
	if !includeDisabled {
		q = q.Where("availability_status = ?", itemDomain.StatusAvailable)
	}
	var out []itemDomain.Item
	return out, q.Find(&out).Error
}
