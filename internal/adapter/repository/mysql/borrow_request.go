package mysql

import (
	"context"

	brDomain "rentify-backend/internal/domain/borrowrequest"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BorrowRequestRepository struct{ db *gorm.DB }

func NewBorrowRequestRepository(db *gorm.DB) *BorrowRequestRepository {
	return &BorrowRequestRepository{db: db}
}

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *BorrowRequestRepository) Tx(ctx context.Context, fn func(repo brDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BorrowRequestRepository{db: tx})
	})
}

func (r *BorrowRequestRepository) Create(ctx context.Context, br *brDomain.BorrowRequest) error {
	return r.db.WithContext(ctx).Create(br).Error
}

func (r *BorrowRequestRepository) GetByID(ctx context.Context, id uint64) (*brDomain.BorrowRequest, error) {
	var out brDomain.BorrowRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", id).First(&out)
	return &out, res.Error
}

func (r *BorrowRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*brDomain.BorrowRequest, error) {
	var out brDomain.BorrowRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *BorrowRequestRepository) LockByBorrower(ctx context.Context, borrowerID uint64) ([]brDomain.BorrowRequest, error) {
	var out []brDomain.BorrowRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("borrower_id = ?", borrowerID).
		Order("request_id").
		Find(&out).Error
	return out, err
}

func (r *BorrowRequestRepository) UpdateStatus(ctx context.Context, id uint64, status brDomain.Status, lenderResponse *string) (int64, error) {
	updates := map[string]any{"status": status}
	if lenderResponse != nil {
		updates["lender_response"] = *lenderResponse
	}
	res := r.db.WithContext(ctx).
		Model(&brDomain.BorrowRequest{}).
		Where("request_id = ?", id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *BorrowRequestRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	res := r.db.WithContext(ctx).Where("request_id = ?", id).Delete(&brDomain.BorrowRequest{})
	return res.RowsAffected, res.Error
}

const requestViewColumns = `
	br.request_id, br.item_id, br.borrower_id, br.lender_id, br.status,
	br.borrower_reason, br.lender_response, br.borrow_date, br.return_date,
	br.created_at, br.updated_at,
	i.item_name,
	u.username  AS borrower_username,
	u.full_name AS borrower_name,
	l.full_name AS lender_name`

func (r *BorrowRequestRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("borrow_requests br").
		Select(requestViewColumns).
		Joins("LEFT JOIN items i ON i.item_id = br.item_id").
		Joins("LEFT JOIN users u ON u.user_id = br.borrower_id").
		Joins("LEFT JOIN lender l ON l.lender_id = br.lender_id")
}

func (r *BorrowRequestRepository) GetView(ctx context.Context, id uint64) (*brDomain.View, error) {
	var out brDomain.View
	res := r.viewQuery(ctx).Where("br.request_id = ?", id).Take(&out)
	return &out, res.Error
}

func (r *BorrowRequestRepository) ListViews(ctx context.Context) ([]brDomain.View, error) {
	var out []brDomain.View
	err := r.viewQuery(ctx).Order("br.created_at DESC, br.request_id DESC").Scan(&out).Error
	return out, err
}

func (r *BorrowRequestRepository) ListViewsByBorrower(ctx context.Context, borrowerID uint64, status brDomain.Status) ([]brDomain.View, error) {
	q := r.viewQuery(ctx).Where("br.borrower_id = ?", borrowerID)
	if status != "" {
		q = q.Where("br.status = ?", status)
	}
	var out []brDomain.View
	err := q.Order("br.created_at DESC, br.request_id DESC").Scan(&out).Error
	return out, err
}
