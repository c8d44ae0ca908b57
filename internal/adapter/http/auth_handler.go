package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"rentify-backend/internal/adapter/middleware"
	"rentify-backend/internal/usecase/auth"
	"rentify-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

type LoginService interface {
	Login(ctx context.Context, username, secret string) (*auth.Identity, error)
}

type SignupService interface {
	Register(ctx context.Context, in auth.SignupInput) (*auth.SignupResult, error)
}

// TokenIssuer signs session tokens. Nil disables them.
type TokenIssuer interface {
	Issue(kind, subject, role string) (string, error)
}

type AuthHandler struct {
	login  LoginService
	signup SignupService
	tokens TokenIssuer
}

func NewAuthHandler(login LoginService, signup SignupService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{login: login, signup: signup, tokens: tokens}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	*auth.Identity
	Token string `json:"token,omitempty"`
}

// Login answers every failure with the same 403 body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return writeError(c, auth.ErrInvalidLogin)
	}
	id, err := h.login.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	resp := loginResp{Identity: id}
	if h.tokens != nil {
		tok, err := h.tokens.Issue(string(id.Kind), formatID(id.ID), id.Role)
		if err != nil {
			return writeError(c, err)
		}
		resp.Token = tok
	}
	return c.JSON(http.StatusOK, resp)
}

type signupReq struct {
	Username string `json:"username"  validate:"nonblank,max=100"`
	Email    string `json:"email"     validate:"nonblank,max=255"`
	Password string `json:"password"  validate:"required,max=72"`
	FullName string `json:"full_name" validate:"max=255"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	res, err := h.signup.Register(c.Request().Context(), auth.SignupInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"user_id":   res.UserID,
		"username":  res.Username,
		"email":     res.Email,
		"full_name": res.FullName,
		"role":      res.Role,
	})
}

// Me echoes the principal of a verified session token.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := c.Get(middleware.ClaimsKey).(*token.Claims)
	if !ok {
		return writeError(c, auth.ErrInvalidLogin)
	}
	pid, err := strconv.ParseUint(strings.TrimPrefix(claims.Subject, claims.Kind+":"), 10, 64)
	if err != nil {
		return writeError(c, auth.ErrInvalidLogin)
	}
	out := map[string]any{"kind": claims.Kind, "id": pid, "role": claims.Role}
	if claims.ExpiresAt != nil {
		out["expires_at"] = claims.ExpiresAt.Time.UTC()
	}
	return c.JSON(http.StatusOK, out)
}
