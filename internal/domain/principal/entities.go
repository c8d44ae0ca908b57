package principal

import (
	"time"

	"rentify-backend/internal/domain/apperr"
)

// Kind names one of the three principal tables.
type Kind string

const (
	KindStaff  Kind = "staff"
	KindLender Kind = "lender"
	KindUser   Kind = "user"
)

// Precedence is the lookup order used at login; earlier kinds win.
var Precedence = []Kind{KindStaff, KindLender, KindUser}

var (
	ErrNotFound  = apperr.NotFound("principal not found")
	ErrDuplicate = apperr.New(apperr.KindConflict, "username or email already exists")
)

// Principal is the table-independent shape the store adapter returns.
// PasswordHash is nil when the column is NULL.
type Principal struct {
	Kind         Kind    `gorm:"-"`
	ID           uint64  `gorm:"column:id"`
	Username     string  `gorm:"column:username"`
	FullName     string  `gorm:"column:full_name"`
	Email        string  `gorm:"column:email"`
	Role         string  `gorm:"column:role"`
	PasswordHash *string `gorm:"column:password_hash"`
}

// Table: users. Username and email are unique only here.
type User struct {
	ID           uint64    `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:100;not null;uniqueIndex"`
	FullName     string    `gorm:"column:full_name;size:255"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex"`
	Role         string    `gorm:"column:role;size:50;not null;default:User"`
	PasswordHash *string   `gorm:"column:password_hash;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string { return "users" }

// Table: lender
type Lender struct {
	ID           uint64    `gorm:"column:lender_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:100;not null;index"`
	FullName     string    `gorm:"column:full_name;size:255"`
	Email        string    `gorm:"column:email;size:255"`
	Role         string    `gorm:"column:role;size:50"`
	PasswordHash *string   `gorm:"column:password_hash;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Lender) TableName() string { return "lender" }

// Table: staff
type Staff struct {
	ID           uint64    `gorm:"column:staff_id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;size:100;not null;index"`
	FullName     string    `gorm:"column:full_name;size:255"`
	Email        string    `gorm:"column:email;size:255"`
	Role         string    `gorm:"column:role;size:50"`
	PasswordHash *string   `gorm:"column:password_hash;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Staff) TableName() string { return "staff" }
