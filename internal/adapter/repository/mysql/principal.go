package mysql

import (
	"context"
	"fmt"

	principalDomain "rentify-backend/internal/domain/principal"

	"gorm.io/gorm"
)

type principalTable struct {
	name  string
	idCol string
}

// The three principal tables share their column set except for the key.
var principalTables = map[principalDomain.Kind]principalTable{
	principalDomain.KindStaff:  {name: "staff", idCol: "staff_id"},
	principalDomain.KindLender: {name: "lender", idCol: "lender_id"},
	principalDomain.KindUser:   {name: "users", idCol: "user_id"},
}

type PrincipalRepository struct{ db *gorm.DB }

func NewPrincipalRepository(db *gorm.DB) *PrincipalRepository { return &PrincipalRepository{db: db} }

func tableFor(kind principalDomain.Kind) (principalTable, error) {
	t, ok := principalTables[kind]
	if !ok {
		return principalTable{}, fmt.Errorf("unknown principal kind %q", kind)
	}
	return t, nil
}

func (r *PrincipalRepository) FindByUsername(ctx context.Context, kind principalDomain.Kind, username string) (*principalDomain.Principal, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	var out principalDomain.Principal
	res := r.db.WithContext(ctx).
		Table(t.name).
		Select(t.idCol+" AS id, username, full_name, email, role, password_hash").
		Where("username = ?", username).
		Order(t.idCol).
		Take(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	out.Kind = kind
	return &out, nil
}

func (r *PrincipalRepository) UpgradeCredential(ctx context.Context, kind principalDomain.Kind, id uint64, hash string) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Table(t.name).
		Where(t.idCol+" = ?", id).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PrincipalRepository) GetUserByID(ctx context.Context, id uint64) (*principalDomain.User, error) {
	var out principalDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", id).First(&out)
	return &out, res.Error
}

func (r *PrincipalRepository) UserExists(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&principalDomain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n > 0, err
}

func (r *PrincipalRepository) CreateUser(ctx context.Context, u *principalDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}
