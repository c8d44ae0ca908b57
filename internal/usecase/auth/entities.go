package auth

import "rentify-backend/internal/domain/principal"

// Identity is what a successful login returns. It never carries the stored
// credential.
type Identity struct {
	Kind     principal.Kind `json:"kind"`
	ID       uint64         `json:"id"`
	Username string         `json:"username"`
	FullName string         `json:"full_name"`
	Email    string         `json:"email"`
	Role     string         `json:"role"`
}

type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type SignupResult struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
