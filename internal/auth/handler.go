package auth

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orgnest/backend/internal/models"
	"github.com/orgnest/backend/pkg/response"
	"github.com/orgnest/backend/pkg/utils"
)

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the auth response payload: bearer token plus public user.
type TokenResponse struct {
	AccessToken string            `json:"accessToken"`
	User        models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	store  Store
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(store Store, jwt *JWTService, logger *zap.Logger) *Handler {
	return &Handler{store: store, jwt: jwt, logger: logger}
}

// Register handles POST /auth/register. Creates the user together with
// their default organisation and returns a fresh token.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs := missingFieldErrors(err); errs != nil {
			response.ValidationFailed(c, errs)
			return
		}
		response.BadRequest(c, "invalid request body")
		return
	}

	// Pre-check gives the clean message; the unique index settles races.
	if _, err := h.store.GetByEmail(c.Request.Context(), req.Email); err == nil {
		response.Conflict(c, "User with this email already exists")
		return
	} else if !errors.Is(err, ErrNotFound) {
		h.logger.Error("register: lookup email", zap.Error(err))
		response.Internal(c, "Registration unsuccessful")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("register: hash password", zap.Error(err))
		response.Internal(c, "Registration unsuccessful")
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hash,
		Phone:     req.Phone,
	}
	org := &models.Organization{
		Name:        fmt.Sprintf("%s's Organisation", req.FirstName),
		Description: fmt.Sprintf("Default organisation for %s", req.FirstName),
	}
	if err := h.store.CreateWithDefaultOrg(c.Request.Context(), user, org); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			response.Conflict(c, "User with this email already exists")
			return
		}
		h.logger.Error("register: create user", zap.Error(err))
		response.Internal(c, "Registration unsuccessful")
		return
	}

	token, err := h.jwt.Issue(user.ID)
	if err != nil {
		h.logger.Error("register: issue token", zap.Error(err))
		response.Internal(c, "Registration unsuccessful")
		return
	}

	response.Created(c, "Registration successful", TokenResponse{AccessToken: token, User: user.ToPublic()})
}

// Login handles POST /auth/login. Unknown email and wrong password produce
// identical responses so callers cannot probe for account existence.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errs := missingFieldErrors(err); errs != nil {
			response.ValidationFailed(c, errs)
			return
		}
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.store.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error("login: lookup email", zap.Error(err))
		}
		response.Unauthorized(c, "Authentication failed")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "Authentication failed")
		return
	}

	token, err := h.jwt.Issue(user.ID)
	if err != nil {
		h.logger.Error("login: issue token", zap.Error(err))
		response.Internal(c, "Login unsuccessful")
		return
	}

	response.OK(c, "Login successful", TokenResponse{AccessToken: token, User: user.ToPublic()})
}
