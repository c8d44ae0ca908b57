package principal

import "context"

type Repository interface {
	// FindByUsername looks the username up in the table of kind; ErrNotFound
	// when absent.
	FindByUsername(ctx context.Context, kind Kind, username string) (*Principal, error)

	// UpgradeCredential replaces the stored credential with a modern hash.
	UpgradeCredential(ctx context.Context, kind Kind, id uint64, hash string) error

	// Users table only.
	GetUserByID(ctx context.Context, id uint64) (*User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, u *User) error
}
