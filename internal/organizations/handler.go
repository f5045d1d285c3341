package organizations

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orgnest/backend/internal/auth"
	"github.com/orgnest/backend/internal/middleware"
	"github.com/orgnest/backend/internal/models"
	"github.com/orgnest/backend/pkg/response"
)

// orgNotFoundMsg is used for both absent organisations and access denials so
// a caller cannot probe for existence.
const orgNotFoundMsg = "Organization not found or you do not have access to it"

// UserFinder is the slice of the auth store needed to check that a
// membership target exists.
type UserFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Handler handles organisation HTTP endpoints.
type Handler struct {
	store  Store
	users  UserFinder
	access *AccessCache
	logger *zap.Logger
}

// NewHandler creates an organizations handler.
func NewHandler(store Store, users UserFinder, access *AccessCache, logger *zap.Logger) *Handler {
	return &Handler{store: store, users: users, access: access, logger: logger}
}

// CreateOrganizationRequest is the body for POST /api/organisations.
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// AddMemberRequest is the body for POST /api/organisations/:orgId/users.
type AddMemberRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

// List handles GET /api/organisations. Returns organisations the caller
// created or is a member of.
func (h *Handler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	orgs, err := h.store.ListVisible(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list organisations", zap.Error(err))
		response.Internal(c, "Failed to retrieve user organisations")
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}
	response.OK(c, "User organisations retrieved successfully", gin.H{"organisations": orgs})
}

// GetByID handles GET /api/organisations/:orgId. Predicate-gated: a denied
// and a nonexistent organisation are indistinguishable (404 either way).
func (h *Handler) GetByID(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		response.NotFound(c, orgNotFoundMsg)
		return
	}

	ok, err := h.access.CanAccess(c.Request.Context(), userID, orgID)
	if err != nil {
		h.logger.Error("org access check", zap.Error(err))
		response.Internal(c, "Failed to retrieve organization")
		return
	}
	if !ok {
		response.NotFound(c, orgNotFoundMsg)
		return
	}

	org, err := h.store.GetByID(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, orgNotFoundMsg)
			return
		}
		h.logger.Error("get organisation", zap.Error(err))
		response.Internal(c, "Failed to retrieve organization")
		return
	}
	response.OK(c, "Organisation retrieved successfully", org)
}

// Create handles POST /api/organisations. The caller becomes the creator;
// no predicate check is needed for one's own organisation.
func (h *Handler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Client Error")
		return
	}
	org := &models.Organization{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	}
	if err := h.store.Create(c.Request.Context(), org); err != nil {
		h.logger.Error("create organisation", zap.Error(err))
		response.BadRequest(c, "Client Error")
		return
	}
	response.Created(c, "Organisation created successfully", org)
}

// AddMember handles POST /api/organisations/:orgId/users. Records a
// membership edge after checking both sides exist.
//
// TODO: require the Auth Gate plus a creator check here once product
// confirms; today any caller may add any existing user to any organisation.
func (h *Handler) AddMember(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		response.NotFound(c, "Organization not found")
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "userId is required")
		return
	}

	if _, err := h.store.GetByID(c.Request.Context(), orgID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Organization not found")
			return
		}
		h.logger.Error("add member: get organisation", zap.Error(err))
		response.Internal(c, "Failed to add user to organization")
		return
	}
	if _, err := h.users.GetByID(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		h.logger.Error("add member: get user", zap.Error(err))
		response.Internal(c, "Failed to add user to organization")
		return
	}

	if err := h.store.AddMember(c.Request.Context(), orgID, req.UserID); err != nil {
		h.logger.Error("add member", zap.Error(err))
		response.Internal(c, "Failed to add user to organization")
		return
	}
	h.access.Invalidate(c.Request.Context(), orgID, req.UserID)

	response.OK(c, "User added to organisation successfully", nil)
}
