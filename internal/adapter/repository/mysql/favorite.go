package mysql

import (
	"context"

	favDomain "rentify-backend/internal/domain/favorite"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct{ db *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{db: db} }

func (r *FavoriteRepository) List(ctx context.Context, userID uint64) ([]favDomain.View, error) {
	var out []favDomain.View
	err := r.db.WithContext(ctx).
		Table("user_favorites f").
		Select("f.item_id, i.item_name, i.description, i.availability_status").
		Joins("JOIN items i ON i.item_id = f.item_id").
		Where("f.user_id = ?", userID).
		Order("f.created_at, f.item_id").
		Scan(&out).Error
	return out, err
}

// Add mirrors INSERT IGNORE: an existing pair is left untouched.
func (r *FavoriteRepository) Add(ctx context.Context, userID, itemID uint64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favDomain.Favorite{UserID: userID, ItemID: itemID}).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, itemID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&favDomain.Favorite{})
	return res.RowsAffected, res.Error
}
