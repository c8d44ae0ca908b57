package mysql

import (
	"context"

	historyDomain "rentify-backend/internal/domain/history"

	"gorm.io/gorm"
)

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Create(ctx context.Context, rec *historyDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *HistoryRepository) GetByID(ctx context.Context, id uint64) (*historyDomain.Record, error) {
	var out historyDomain.Record
	res := r.db.WithContext(ctx).Where("history_id = ?", id).First(&out)
	return &out, res.Error
}

func (r *HistoryRepository) Save(ctx context.Context, rec *historyDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *HistoryRepository) List(ctx context.Context, userID uint64) ([]historyDomain.View, error) {
	q := r.db.WithContext(ctx).
		Table("history h").
		Select("h.*, i.item_name").
		Joins("LEFT JOIN items i ON i.item_id = h.item_id")
	if userID != 0 {
		q = q.Where("h.user_id = ?", userID)
	}
	var out []historyDomain.View
	err := q.Order("h.created_at DESC, h.history_id DESC").Scan(&out).Error
	return out, err
}
