package users

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orgnest/backend/internal/middleware"
	"github.com/orgnest/backend/pkg/response"
)

const userNotFoundMsg = "User not found or unauthorized to access this user"

// Handler handles the user lookup endpoint.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a users handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// GetByID handles GET /api/users/:id. The target is visible to themselves
// and to users sharing an organisation with them; everyone else gets the
// same 404 whether or not the user exists.
func (h *Handler) GetByID(c *gin.Context) {
	viewerID := c.MustGet(middleware.ContextUserID).(uuid.UUID)
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, userNotFoundMsg)
		return
	}

	user, err := h.store.GetVisible(c.Request.Context(), targetID, viewerID)
	if err != nil {
		if errors.Is(err, ErrNotVisible) {
			response.NotFound(c, userNotFoundMsg)
			return
		}
		h.logger.Error("get user", zap.Error(err))
		response.Internal(c, "Failed to retrieve user details")
		return
	}
	response.OK(c, "User details retrieved successfully", user)
}
