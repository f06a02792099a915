package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentbook/internal/handlers"
	"rentbook/internal/logger"
	"rentbook/internal/middleware"
	"rentbook/internal/models"
	"rentbook/internal/services"
	"rentbook/internal/throttle"
	"rentbook/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Admin{},
		&models.House{},
		&models.Renter{},
		&models.Bill{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database. The login throttle gets a fresh window per app and the
// failure delay is zeroed so tests run fast.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	adminService := services.NewAdminService(db)
	houseService := services.NewHouseService(db)
	renterService := services.NewRenterService(db)
	billService := services.NewBillService(db, renterService)

	limiter := throttle.NewMemoryLimiter(5, 15*time.Minute)

	// Handlers
	authHandler := handlers.NewAuthHandler(adminService, renterService, limiter, 0)
	houseHandler := handlers.NewHouseHandler(houseService)
	renterHandler := handlers.NewRenterHandler(renterService)
	billHandler := handlers.NewBillHandler(billService)
	portalHandler := handlers.NewPortalHandler(houseService, billService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/admin/login", authHandler.AdminLogin)
	v1.POST("/renter/auth", authHandler.RenterAuth)
	v1.GET("/renter/auth/resource", portalHandler.Resources)

	// Admin routes
	admin := v1.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleAdmin))

	houses := admin.Group("/houses")
	houses.GET("", houseHandler.List)
	houses.POST("", houseHandler.Create)
	houses.PUT("/:id", houseHandler.Update)
	houses.DELETE("/:id", houseHandler.Delete)

	renters := admin.Group("/renters")
	renters.GET("", renterHandler.List)
	renters.POST("", renterHandler.Create)
	renters.PUT("/:id", renterHandler.Update)
	renters.DELETE("/:id", renterHandler.Delete)

	bills := admin.Group("/bills")
	bills.GET("", billHandler.List)
	bills.GET("/defaults", billHandler.Defaults)
	bills.POST("", billHandler.Create)
	bills.PUT("/:id", billHandler.Update)
	bills.DELETE("/:id", billHandler.Delete)

	// Renter portal routes
	portal := v1.Group("/renter")
	portal.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleRenter))
	portal.GET("/bills", portalHandler.Bills)
	portal.GET("/usage", portalHandler.Usage)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONList parses the response body into a slice of maps.
func parseJSONList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var result []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// jsonNum renders an ID parsed from JSON back into a path or body segment.
func jsonNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// seedAdmin creates an admin directly; there is no registration endpoint.
func (app *testApp) seedAdmin(t *testing.T, username, password string) {
	t.Helper()
	if _, err := services.NewAdminService(app.DB).Create(username, password); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

// loginAdmin logs in as an admin and returns the access token.
func (app *testApp) loginAdmin(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/v1/admin/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["accessToken"].(string)
}

// loginRenter logs in with a renter PIN and returns the access token.
func (app *testApp) loginRenter(t *testing.T, pin string) string {
	t.Helper()
	body := fmt.Sprintf(`{"pin_hash":%q}`, pin)
	rec := app.request("POST", "/api/v1/renter/auth", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("renter login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["accessToken"].(string)
}

// createHouse creates a house over the API and returns its ID.
func (app *testApp) createHouse(t *testing.T, token, body string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/v1/houses", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create house failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

// createRenter creates a renter over the API and returns its ID.
func (app *testApp) createRenter(t *testing.T, token, body string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/v1/renters", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create renter failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}
