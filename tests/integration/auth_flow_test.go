package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_AdminLoginAndAccess(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")

	token := app.loginAdmin(t, "landlord", "password123")
	if token == "" {
		t.Fatal("expected a non-empty access token")
	}

	// Token opens the admin surface.
	rec := app.request("GET", "/api/v1/houses", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// No token does not.
	rec = app.request("GET", "/api/v1/houses", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestAuthFlow_AdminWrongPassword(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")

	rec := app.request("POST", "/api/v1/admin/login",
		`{"username":"landlord","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["message"] != "Invalid username or password." {
		t.Errorf("unexpected message %v", result["message"])
	}
}

func TestAuthFlow_UnknownUsernameSameMessage(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/v1/admin/login",
		`{"username":"ghost","password":"whatever1"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["message"] != "Invalid username or password." {
		t.Errorf("unknown username must yield the same message, got %v", result["message"])
	}
}

func TestAuthFlow_ThrottleAfterFiveFailures(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")

	for i := 0; i < 5; i++ {
		rec := app.request("POST", "/api/v1/admin/login",
			`{"username":"landlord","password":"wrong"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, rec.Code)
		}
	}

	// Sixth attempt is rejected even with the correct password.
	rec := app.request("POST", "/api/v1/admin/login",
		`{"username":"landlord","password":"password123"}`, "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on sixth attempt, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["message"] != "Too many login attempts. Please try again later." {
		t.Errorf("unexpected message %v", result["message"])
	}
}

func TestAuthFlow_RenterLoginWithPIN(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Jalan Melur 12","monthly":5000,"elect_rate":12.5,"water_rate":10.5,"billing_day":15}`)
	app.createRenter(t, adminToken,
		`{"name":"Aminah","houseId":`+jsonNum(houseID)+`,"pin_hash":"house3a"}`)

	// PIN lookup is case-insensitive; the stored PIN was uppercased.
	renterToken := app.loginRenter(t, "HOUSE3A")
	if renterToken == "" {
		t.Fatal("expected a renter token")
	}

	// Renter token opens the portal but not the admin surface.
	rec := app.request("GET", "/api/v1/renter/bills", "", renterToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/houses", "", renterToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for renter on admin route, got %d", rec.Code)
	}

	// And the admin token cannot read the portal.
	rec = app.request("GET", "/api/v1/renter/bills", "", adminToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for admin on portal route, got %d", rec.Code)
	}
}

func TestAuthFlow_InactiveRenterCannotLogin(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Taman Indah 3","monthly":3200,"billing_day":1}`)
	renterID := app.createRenter(t, adminToken,
		`{"name":"Ben","houseId":`+jsonNum(houseID)+`,"pin_hash":"BEN123"}`)

	// Move the renter out.
	rec := app.request("PUT", "/api/v1/renters/"+jsonNum(renterID),
		`{"name":"Ben","houseId":`+jsonNum(houseID)+`,"pin_hash":"BEN123","active":false}`, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("deactivate failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/renter/auth", `{"pin_hash":"BEN123"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for inactive renter, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["message"] != "There was an error with your house/pin combination. Please try again" {
		t.Errorf("unexpected message %v", result["message"])
	}
}

func TestAuthFlow_ResourceListIsPublic(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")
	app.createHouse(t, adminToken, `{"name":"Jalan Melur 12","monthly":5000,"billing_day":15}`)

	rec := app.request("GET", "/api/v1/renter/auth/resource", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resources := parseJSONList(t, rec)
	if len(resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(resources))
	}
	if _, leaked := resources[0]["monthly"]; leaked {
		t.Error("resource list must not leak rent amounts")
	}
}
