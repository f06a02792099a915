package integration

import (
	"net/http"
	"strings"
	"testing"
)

func TestBillFlow_CreateComputeAndPortal(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Jalan Melur 12","monthly":5000,"elect_rate":12.5,"water_rate":10.5,"billing_day":15}`)
	renterID := app.createRenter(t, adminToken,
		`{"name":"Aminah","houseId":`+jsonNum(houseID)+`,"pin_hash":"HOUSE3A"}`)

	// Create a bill; totals come back computed, whatever the client sent.
	rec := app.request("POST", "/api/v1/bills",
		`{"renterId":`+jsonNum(renterID)+`,"month":"2026-09-15T00:00:00Z","rent":5000,
		  "rate_electricity":12.5,"prev_electricity":150,"curr_electricity":200,
		  "rate_water":10.5,"prev_water":80,"curr_water":100,
		  "others":150,"total":1}`, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create bill failed: %d %s", rec.Code, rec.Body.String())
	}
	bill := parseJSON(t, rec)
	billID := bill["id"].(float64)

	if bill["total_electricity"].(float64) != 625.00 {
		t.Errorf("expected total_electricity=625, got %v", bill["total_electricity"])
	}
	if bill["total_water"].(float64) != 210.00 {
		t.Errorf("expected total_water=210, got %v", bill["total_water"])
	}
	if bill["total"].(float64) != 5985.00 {
		t.Errorf("expected total=5985, got %v", bill["total"])
	}
	if bill["status"] != "PENDING" {
		t.Errorf("expected default PENDING status, got %v", bill["status"])
	}

	// Defaults for the next bill carry this bill's readings forward.
	rec = app.request("GET", "/api/v1/bills/defaults?renter_id="+jsonNum(renterID), "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("defaults failed: %d %s", rec.Code, rec.Body.String())
	}
	defaults := parseJSON(t, rec)
	if defaults["prev_electricity"].(float64) != 200 {
		t.Errorf("expected prev_electricity=200, got %v", defaults["prev_electricity"])
	}
	if defaults["prev_water"].(float64) != 100 {
		t.Errorf("expected prev_water=100, got %v", defaults["prev_water"])
	}
	if defaults["rent"].(float64) != 5000 {
		t.Errorf("expected rent=5000, got %v", defaults["rent"])
	}

	// Update readings; everything is recomputed and the status sticks.
	rec = app.request("PUT", "/api/v1/bills/"+jsonNum(billID),
		`{"renterId":`+jsonNum(renterID)+`,"month":"2026-09-15T00:00:00Z","rent":5000,
		  "rate_electricity":12.5,"prev_electricity":150,"curr_electricity":250,
		  "rate_water":10.5,"prev_water":80,"curr_water":100,
		  "others":150,"status":"PAID"}`, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("update bill failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)
	if updated["total_electricity"].(float64) != 1250.00 {
		t.Errorf("expected total_electricity=1250, got %v", updated["total_electricity"])
	}
	if updated["total"].(float64) != 6610.00 {
		t.Errorf("expected total=6610, got %v", updated["total"])
	}
	if updated["status"] != "PAID" {
		t.Errorf("expected PAID, got %v", updated["status"])
	}

	// The renter sees the bill and the usage point in the portal.
	renterToken := app.loginRenter(t, "HOUSE3A")

	rec = app.request("GET", "/api/v1/renter/bills", "", renterToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("portal bills failed: %d %s", rec.Code, rec.Body.String())
	}
	bills := parseJSONList(t, rec)
	if len(bills) != 1 {
		t.Fatalf("expected 1 bill, got %d", len(bills))
	}
	if bills[0]["total"].(float64) != 6610.00 {
		t.Errorf("expected total=6610 in portal, got %v", bills[0]["total"])
	}

	rec = app.request("GET", "/api/v1/renter/usage", "", renterToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("portal usage failed: %d %s", rec.Code, rec.Body.String())
	}
	usage := parseJSONList(t, rec)
	if len(usage) != 1 {
		t.Fatalf("expected 1 usage point, got %d", len(usage))
	}
	if usage[0]["electricity"].(float64) != 100 {
		t.Errorf("expected electricity consumption 100, got %v", usage[0]["electricity"])
	}
	if usage[0]["water"].(float64) != 20 {
		t.Errorf("expected water consumption 20, got %v", usage[0]["water"])
	}
}

func TestBillFlow_IncompleteReadingsLeaveTotalUnset(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Taman Indah 3","monthly":3200,"billing_day":1}`)
	renterID := app.createRenter(t, adminToken,
		`{"name":"Ben","houseId":`+jsonNum(houseID)+`,"pin_hash":"BEN123"}`)

	// Electricity has no current reading yet; water was never metered.
	rec := app.request("POST", "/api/v1/bills",
		`{"renterId":`+jsonNum(renterID)+`,"month":"2026-09-01T00:00:00Z","rent":3200,
		  "rate_electricity":12.5,"prev_electricity":150,"others":50}`, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create bill failed: %d %s", rec.Code, rec.Body.String())
	}
	bill := parseJSON(t, rec)
	if bill["total_electricity"] != nil {
		t.Errorf("expected unset electricity total, got %v", bill["total_electricity"])
	}
	if bill["total"].(float64) != 3250.00 {
		t.Errorf("expected total=3250 (rent+others only), got %v", bill["total"])
	}
}

func TestBillFlow_DeleteGuards(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Jalan Melur 12","monthly":5000,"billing_day":15}`)
	renterID := app.createRenter(t, adminToken,
		`{"name":"Aminah","houseId":`+jsonNum(houseID)+`,"pin_hash":"HOUSE3A"}`)

	rec := app.request("POST", "/api/v1/bills",
		`{"renterId":`+jsonNum(renterID)+`,"month":"2026-09-15T00:00:00Z","rent":5000}`, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create bill failed: %d %s", rec.Code, rec.Body.String())
	}
	billID := parseJSON(t, rec)["id"].(float64)

	// House blocked by renter, renter blocked by bill.
	rec = app.request("DELETE", "/api/v1/houses/"+jsonNum(houseID), "", adminToken)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting occupied house, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/renters/"+jsonNum(renterID), "", adminToken)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting renter with bills, got %d", rec.Code)
	}

	// Unwind in order: bill, renter, house.
	rec = app.request("DELETE", "/api/v1/bills/"+jsonNum(billID), "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete bill failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/renters/"+jsonNum(renterID), "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete renter failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("DELETE", "/api/v1/houses/"+jsonNum(houseID), "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete house failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestBillFlow_DuplicatePINRejected(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Jalan Melur 12","monthly":5000,"billing_day":15}`)
	app.createRenter(t, adminToken,
		`{"name":"Aminah","houseId":`+jsonNum(houseID)+`,"pin_hash":"SHARED1"}`)

	// Same PIN in a different case still collides.
	rec := app.request("POST", "/api/v1/renters",
		`{"name":"Ben","houseId":`+jsonNum(houseID)+`,"pin_hash":"shared1"}`, adminToken)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate PIN, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBillFlow_PaginatedList(t *testing.T) {
	app := setupApp(t)
	app.seedAdmin(t, "landlord", "password123")
	adminToken := app.loginAdmin(t, "landlord", "password123")

	houseID := app.createHouse(t, adminToken,
		`{"name":"Jalan Melur 12","monthly":5000,"billing_day":15}`)
	renterID := app.createRenter(t, adminToken,
		`{"name":"Aminah","houseId":`+jsonNum(houseID)+`,"pin_hash":"HOUSE3A"}`)

	months := []string{
		"2026-06-15T00:00:00Z",
		"2026-07-15T00:00:00Z",
		"2026-08-15T00:00:00Z",
	}
	for _, m := range months {
		rec := app.request("POST", "/api/v1/bills",
			`{"renterId":`+jsonNum(renterID)+`,"month":"`+m+`","rent":5000}`, adminToken)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create bill failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	rec := app.request("GET", "/api/v1/bills?page=1&per_page=2", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list bills failed: %d %s", rec.Code, rec.Body.String())
	}
	page := parseJSON(t, rec)
	items := page["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if page["total"].(float64) != 3 {
		t.Errorf("expected total=3, got %v", page["total"])
	}
	if page["pages"].(float64) != 2 {
		t.Errorf("expected pages=2, got %v", page["pages"])
	}

	// Newest month first.
	first := items[0].(map[string]interface{})
	if month, _ := first["month"].(string); !strings.HasPrefix(month, "2026-08-15") {
		t.Errorf("expected newest month first, got %v", first["month"])
	}
}
