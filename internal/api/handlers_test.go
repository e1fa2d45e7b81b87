// internal/api/handlers_test.go
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"pcblab/internal/catalog"
	"pcblab/internal/clock"
	"pcblab/internal/config"
	"pcblab/internal/forms"
	"pcblab/internal/scanner"
	"pcblab/internal/session"
)

// testEnv bundles the router with the services behind it
type testEnv struct {
	router   *mux.Router
	services Services
	cfg      *config.Config
	clock    *clock.Fake
	sim      *scanner.Simulator
	session  *session.Session
}

// setupTestEnvironment creates a router whose form delays are zero so
// requests resolve without advancing the clock
func setupTestEnvironment(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.New()
	cfg.Simulator.LoginDelay = "0s"
	cfg.Simulator.RegisterDelay = "0s"
	cfg.Simulator.QuoteDelay = "0s"
	cfg.Simulator.SubscriptionDelay = "0s"
	cfg.Advanced.MetricsEnabled = true

	clk := clock.NewFake(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	cat := catalog.Default()
	sess := session.New(cat)
	sim := scanner.New(cfg, clk)

	services := Services{
		Config:    cfg,
		Catalog:   cat,
		Scanner:   sim,
		Session:   sess,
		Submitter: forms.New(cfg, clk, sess, cat),
	}

	return &testEnv{
		router:   NewRouter(services),
		services: services,
		cfg:      cfg,
		clock:    clk,
		sim:      sim,
		session:  sess,
	}
}

// do performs a request against the router
func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rr.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, rr.Code, rr.Body.String())
	}
}

// TestScanLifecycle tests starting, polling and resetting a scan
func TestScanLifecycle(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "POST", "/api/scans", `{"mode":"capture"}`)
	expectStatus(t, rr, http.StatusAccepted)

	var started startScanResponse
	decode(t, rr, &started)
	if started.ScanID == "" {
		t.Error("Expected a scan ID in the response")
	}

	// second scan while scanning
	rr = env.do(t, "POST", "/api/scans", `{"mode":"capture"}`)
	expectStatus(t, rr, http.StatusConflict)

	env.clock.Advance(3 * time.Second)
	waitForState(t, env.sim, scanner.StateComplete)

	rr = env.do(t, "GET", "/api/scans/status", "")
	expectStatus(t, rr, http.StatusOK)

	var status scanner.Status
	decode(t, rr, &status)
	if status.State != scanner.StateComplete {
		t.Errorf("Expected state 'complete', got '%s'", status.State)
	}
	if status.Result == nil || status.Result.ComponentsFound != 47 {
		t.Fatalf("Expected result with 47 components, got %+v", status.Result)
	}

	// a result must be reset first
	rr = env.do(t, "POST", "/api/scans", `{"mode":"capture"}`)
	expectStatus(t, rr, http.StatusConflict)

	rr = env.do(t, "POST", "/api/scans/reset", "")
	expectStatus(t, rr, http.StatusOK)
	decode(t, rr, &status)
	if status.State != scanner.StateIdle {
		t.Errorf("Expected state 'idle' after reset, got '%s'", status.State)
	}
}

// waitForState waits for the simulator goroutine to settle after the clock fired
func waitForState(t *testing.T, sim *scanner.Simulator, want scanner.State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for sim.State() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Expected state '%s', stuck at '%s'", want, sim.State())
		}
		time.Sleep(time.Millisecond)
	}
}

// TestStartScanValidation tests rejected scan triggers
func TestStartScanValidation(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "POST", "/api/scans", `{"mode":"upload"}`)
	expectStatus(t, rr, http.StatusBadRequest)

	var resp errorResponse
	decode(t, rr, &resp)
	if resp.Field != "file.name" {
		t.Errorf("Expected field 'file.name', got '%s'", resp.Field)
	}

	rr = env.do(t, "POST", "/api/scans", `not json`)
	expectStatus(t, rr, http.StatusBadRequest)
}

// TestCancelScan tests cancelling through the API
func TestCancelScan(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "POST", "/api/scans/cancel", "")
	expectStatus(t, rr, http.StatusConflict)

	env.do(t, "POST", "/api/scans", `{"mode":"capture"}`)
	rr = env.do(t, "POST", "/api/scans/cancel", "")
	expectStatus(t, rr, http.StatusOK)

	if env.sim.State() != scanner.StateIdle {
		t.Errorf("Expected state 'idle', got '%s'", env.sim.State())
	}
}

// TestComponentSearch tests the component search endpoint
func TestComponentSearch(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "GET", "/api/components?q=esp32&category=all", "")
	expectStatus(t, rr, http.StatusOK)

	var listings []listingResponse
	decode(t, rr, &listings)
	if len(listings) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(listings))
	}
	if listings[0].Component.PartNumber != "ESP32-WROOM-32" {
		t.Errorf("Expected ESP32-WROOM-32, got %s", listings[0].Component.PartNumber)
	}
	if listings[0].Summary.BestPrice != 3.95 {
		t.Errorf("Expected best price 3.95, got %v", listings[0].Summary.BestPrice)
	}

	rr = env.do(t, "GET", "/api/components", "")
	decode(t, rr, &listings)
	if len(listings) != 3 {
		t.Errorf("Expected 3 listings without filters, got %d", len(listings))
	}
}

// TestComponentLookup tests fetching a component and its offers
func TestComponentLookup(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "GET", "/api/components/2", "")
	expectStatus(t, rr, http.StatusOK)

	rr = env.do(t, "GET", "/api/components/99", "")
	expectStatus(t, rr, http.StatusNotFound)

	rr = env.do(t, "GET", "/api/components/1/offers?sort=stock", "")
	expectStatus(t, rr, http.StatusOK)

	var view catalog.OfferView
	decode(t, rr, &view)
	if len(view.Offers) != 3 || view.Offers[0].SupplierName != "Digi-Key Electronics" {
		t.Errorf("Expected Digi-Key first by stock, got %+v", view.Offers)
	}
	if view.TotalStock != 36470 {
		t.Errorf("Expected total stock 36470, got %d", view.TotalStock)
	}

	rr = env.do(t, "GET", "/api/components/1/offers?sort=distance", "")
	expectStatus(t, rr, http.StatusBadRequest)
}

// TestBoardAndFaultSearch tests the board database endpoints
func TestBoardAndFaultSearch(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "GET", "/api/pcbs?q=pi&category=all", "")
	expectStatus(t, rr, http.StatusOK)

	var boards []map[string]interface{}
	decode(t, rr, &boards)
	if len(boards) != 1 || boards[0]["model"] != "Raspberry Pi 4B" {
		t.Errorf("Expected only Raspberry Pi 4B, got %v", boards)
	}

	rr = env.do(t, "GET", "/api/faults?q=usb", "")
	var faults []map[string]interface{}
	decode(t, rr, &faults)
	if len(faults) != 1 || faults[0]["severity"] != "medium" {
		t.Errorf("Expected the USB controller fault, got %v", faults)
	}
}

// TestTools tests tool listing, detail and the calculator
func TestTools(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "GET", "/api/tools?category=Analysis", "")
	var tools []map[string]interface{}
	decode(t, rr, &tools)
	if len(tools) != 3 {
		t.Errorf("Expected 3 analysis tools, got %d", len(tools))
	}

	rr = env.do(t, "GET", "/api/tools/gerber-viewer", "")
	expectStatus(t, rr, http.StatusOK)
	var detail catalog.ToolDetail
	decode(t, rr, &detail)
	if detail.Available {
		t.Error("Expected gerber viewer to be unavailable")
	}

	rr = env.do(t, "GET", "/api/tools/oscilloscope", "")
	expectStatus(t, rr, http.StatusNotFound)

	rr = env.do(t, "POST", "/api/tools/ohm", `{"input":"V=5 I=0.1"}`)
	expectStatus(t, rr, http.StatusOK)
	var calc map[string]interface{}
	decode(t, rr, &calc)
	if calc["result"] != "Resistance: 50.00 Ω" {
		t.Errorf("Expected 'Resistance: 50.00 Ω', got %v", calc["result"])
	}

	rr = env.do(t, "POST", "/api/tools/ohm", `{"input":"V=5"}`)
	expectStatus(t, rr, http.StatusBadRequest)
}

// TestAnalysisEndpoints tests the analysis dashboard endpoints
func TestAnalysisEndpoints(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "GET", "/api/analysis/components?status=faulty", "")
	expectStatus(t, rr, http.StatusOK)
	var analyses []map[string]interface{}
	decode(t, rr, &analyses)
	if len(analyses) != 1 {
		t.Errorf("Expected 1 faulty component, got %d", len(analyses))
	}

	rr = env.do(t, "GET", "/api/analysis/components?status=melted", "")
	expectStatus(t, rr, http.StatusBadRequest)

	rr = env.do(t, "GET", "/api/analysis/blocks", "")
	expectStatus(t, rr, http.StatusOK)
}

// TestWebsiteEndpoints tests plans, services, contact and categories
func TestWebsiteEndpoints(t *testing.T) {
	env := setupTestEnvironment(t)

	for _, path := range []string{"/api/plans", "/api/services", "/api/categories"} {
		rr := env.do(t, "GET", path, "")
		expectStatus(t, rr, http.StatusOK)
	}

	rr := env.do(t, "GET", "/api/contact", "")
	var contact struct {
		Email string            `json:"email"`
		Links map[string]string `json:"links"`
	}
	decode(t, rr, &contact)
	if contact.Links["email"] != "mailto:info@electronicslab.eu" {
		t.Errorf("Expected mailto link, got %s", contact.Links["email"])
	}
	if contact.Links["phone"] != "tel:+38760308000" {
		t.Errorf("Expected tel link, got %s", contact.Links["phone"])
	}
}

// TestLoginFlow tests login, session, plan selection, subscription and logout
func TestLoginFlow(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "POST", "/api/auth/login", `{"email":"","password":"x"}`)
	expectStatus(t, rr, http.StatusBadRequest)
	var errResp errorResponse
	decode(t, rr, &errResp)
	if errResp.Field != "email" {
		t.Errorf("Expected field 'email', got '%s'", errResp.Field)
	}
	if env.session.IsLoggedIn() {
		t.Fatal("Expected no session after a rejected login")
	}

	rr = env.do(t, "POST", "/api/plans/basic/select", "")
	expectStatus(t, rr, http.StatusUnauthorized)

	rr = env.do(t, "POST", "/api/auth/login", `{"email":"a@b.com","password":"x"}`)
	expectStatus(t, rr, http.StatusOK)

	rr = env.do(t, "GET", "/api/auth/session", "")
	var sess sessionResponse
	decode(t, rr, &sess)
	if !sess.LoggedIn || sess.User == nil || sess.User.Email != "a@b.com" {
		t.Fatalf("Expected session for a@b.com, got %+v", sess)
	}

	rr = env.do(t, "POST", "/api/plans/enterprise/select", "")
	expectStatus(t, rr, http.StatusOK)

	rr = env.do(t, "POST", "/api/subscriptions", "")
	expectStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "Enterprise Plan") {
		t.Errorf("Expected confirmation for the enterprise plan, got %s", rr.Body.String())
	}

	rr = env.do(t, "POST", "/api/auth/logout", "")
	expectStatus(t, rr, http.StatusOK)
	if env.session.IsLoggedIn() {
		t.Error("Expected session to be cleared after logout")
	}
}

// TestRegisterAndQuote tests registration validation and quote requests
func TestRegisterAndQuote(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "POST", "/api/auth/register", `{"name":"Ana","email":"a@b.com","password":"a","confirmPassword":"b"}`)
	expectStatus(t, rr, http.StatusBadRequest)
	var errResp errorResponse
	decode(t, rr, &errResp)
	if errResp.Reason != "PasswordMismatch" {
		t.Errorf("Expected reason 'PasswordMismatch', got '%s'", errResp.Reason)
	}

	rr = env.do(t, "POST", "/api/quotes", `{"name":"Ana","email":"a@b.com","description":"Board will not boot","urgency":"emergency"}`)
	expectStatus(t, rr, http.StatusOK)

	rr = env.do(t, "POST", "/api/subscriptions", `{"planId":"gold"}`)
	expectStatus(t, rr, http.StatusBadRequest)
}

// TestStatusEndpoints tests the status and health endpoints
func TestStatusEndpoints(t *testing.T) {
	env := setupTestEnvironment(t)

	rr := env.do(t, "GET", "/api/status", "")
	expectStatus(t, rr, http.StatusOK)

	var status map[string]interface{}
	decode(t, rr, &status)
	scannerStatus, ok := status["scanner"].(map[string]interface{})
	if !ok || scannerStatus["state"] != "idle" {
		t.Errorf("Expected scanner state 'idle', got %v", status["scanner"])
	}

	rr = env.do(t, "GET", "/api/status/health", "")
	expectStatus(t, rr, http.StatusOK)

	env.do(t, "GET", "/api/tools", "")
	rr = env.do(t, "GET", "/metrics", "")
	expectStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "pcblab_catalog_queries_total") {
		t.Error("Expected catalog query metrics to be exported")
	}
}
