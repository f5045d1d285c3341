package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orgnest/backend/internal/middleware"
	"github.com/orgnest/backend/internal/models"
	"github.com/orgnest/backend/pkg/response"
)

type fakeUserStore struct {
	users map[uuid.UUID]models.UserPublic
	// coMembers marks unordered pairs sharing an organisation.
	coMembers map[[2]uuid.UUID]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:     make(map[uuid.UUID]models.UserPublic),
		coMembers: make(map[[2]uuid.UUID]bool),
	}
}

func pairKey(a, b uuid.UUID) [2]uuid.UUID {
	if a.String() < b.String() {
		return [2]uuid.UUID{a, b}
	}
	return [2]uuid.UUID{b, a}
}

func (f *fakeUserStore) GetVisible(_ context.Context, targetID, viewerID uuid.UUID) (*models.UserPublic, error) {
	u, ok := f.users[targetID]
	if !ok {
		return nil, ErrNotVisible
	}
	if targetID != viewerID && !f.coMembers[pairKey(targetID, viewerID)] {
		return nil, ErrNotVisible
	}
	return &u, nil
}

func newUserRouter(store Store, viewerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(store, zap.NewNop())
	r.GET("/api/users/:id", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, viewerID)
		h.GetByID(c)
	})
	return r
}

func getUser(r *gin.Engine, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seed(store *fakeUserStore, firstName string) uuid.UUID {
	id := uuid.New()
	store.users[id] = models.UserPublic{
		ID:        id,
		FirstName: firstName,
		LastName:  "Doe",
		Email:     firstName + "@x.com",
		Phone:     "555-0100",
	}
	return id
}

func TestGetUserSelf(t *testing.T) {
	store := newFakeUserStore()
	self := seed(store, "john")

	w := getUser(newUserRouter(store, self), self.String())
	require.Equal(t, http.StatusOK, w.Code)

	var body response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "User details retrieved successfully", body.Message)
	data := body.Data.(map[string]interface{})
	require.Equal(t, "john@x.com", data["email"])
}

func TestGetUserCoMember(t *testing.T) {
	store := newFakeUserStore()
	viewer := seed(store, "john")
	target := seed(store, "jane")
	store.coMembers[pairKey(viewer, target)] = true

	w := getUser(newUserRouter(store, viewer), target.String())
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserHiddenFromStrangers(t *testing.T) {
	store := newFakeUserStore()
	viewer := seed(store, "john")
	target := seed(store, "jane")
	r := newUserRouter(store, viewer)

	denied := getUser(r, target.String())
	absent := getUser(r, uuid.New().String())
	malformed := getUser(r, "not-a-uuid")

	for _, w := range []*httptest.ResponseRecorder{denied, absent, malformed} {
		require.Equal(t, http.StatusNotFound, w.Code)
	}
	// Forbidden and nonexistent are indistinguishable.
	require.Equal(t, absent.Body.String(), denied.Body.String())

	var body response.Body
	require.NoError(t, json.Unmarshal(denied.Body.Bytes(), &body))
	require.Equal(t, "User not found or unauthorized to access this user", body.Message)
}
