package dashboard_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sarawut2005-icloud/SarawutShopFrontend/middleware"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/models"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/services"
	"github.com/Sarawut2005-icloud/SarawutShopFrontend/store"
)

func intPtr(v int) *int { return &v }

func setupDashboardRouter(t *testing.T) (*gin.Engine, *services.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Product{
			{ID: "cpu-1", Price: 1000, Stock: intPtr(10)},
			{ID: "gpu-1", Price: 600, Stock: intPtr(0)},
		})
	}))
	t.Cleanup(upstream.Close)

	Init(services.NewBackendClient(upstream.URL, upstream.Client()))
	sessions := services.NewSessionService(store.NewMemoryStore())

	router := gin.New()
	router.Use(middleware.Profile())
	router.GET("/store/dashboard", middleware.AdminOnly(sessions), GetInventoryStats)
	return router, sessions
}

func TestDashboardRequiresAdminMode(t *testing.T) {
	router, _ := setupDashboardRouter(t)

	// a fresh profile that never logged in
	req := httptest.NewRequest(http.MethodGet, "/store/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "inventoryValue")
}

func TestDashboardServesAdminProfile(t *testing.T) {
	router, sessions := setupDashboardRouter(t)

	// first contact mints the profile cookie
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/store/dashboard", nil))
	require.Equal(t, http.StatusForbidden, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	var profileID string
	for _, ck := range cookies {
		if ck.Name == middleware.ProfileCookie {
			profileID = ck.Value
		}
	}
	require.NotEmpty(t, profileID)

	_, err := sessions.SetIdentity(context.Background(), profileID, "Sarawut", "admin", "tok")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/store/dashboard", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data InventoryStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.TotalItems)
	assert.Equal(t, 10000.0, resp.Data.InventoryValue)
	assert.Equal(t, 1, resp.Data.OutOfStock)
}
