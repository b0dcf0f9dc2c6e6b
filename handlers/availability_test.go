package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic/services/availability"

	"github.com/gin-gonic/gin"
)

type fakeEngine struct {
	days map[string][]string
	err  error

	gotDoctorID string
	gotFrom     string
	gotTo       string
}

func (f *fakeEngine) ComputeAvailability(ctx context.Context, doctorID, from, to string) (map[string][]string, error) {
	f.gotDoctorID, f.gotFrom, f.gotTo = doctorID, from, to
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}

func newAvailabilityRouter(engine availability.AvailabilityEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/availability", NewAvailabilityHandler(engine).GetAvailabilityHandler)
	return router
}

func TestGetAvailabilityHandlerOK(t *testing.T) {
	engine := &fakeEngine{days: map[string][]string{"2024-05-01": {"09:00", "09:30"}}}
	router := newAvailabilityRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?doctor_id=doc-1&month=2024-05", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	var resp struct {
		DoctorID string              `json:"doctor_id"`
		Month    string              `json:"month"`
		DateFrom string              `json:"date_from"`
		DateTo   string              `json:"date_to"`
		Days     map[string][]string `json:"days"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DoctorID != "doc-1" || resp.Month != "2024-05" {
		t.Errorf("echo fields wrong: %+v", resp)
	}
	if resp.DateFrom != "2024-05-01" || resp.DateTo != "2024-06-01" {
		t.Errorf("resolved period wrong: [%s, %s)", resp.DateFrom, resp.DateTo)
	}
	if len(resp.Days["2024-05-01"]) != 2 {
		t.Errorf("days payload wrong: %v", resp.Days)
	}
	if engine.gotFrom != "2024-05-01" || engine.gotTo != "2024-06-01" {
		t.Errorf("engine got period [%s, %s)", engine.gotFrom, engine.gotTo)
	}
}

func TestGetAvailabilityHandlerExplicitPeriodOmitsMonth(t *testing.T) {
	engine := &fakeEngine{days: map[string][]string{}}
	router := newAvailabilityRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?doctor_id=doc-1&date_from=2024-05-10&date_to=2024-05-20", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["month"]; ok {
		t.Errorf("month echoed without a month query: %v", resp)
	}
}

func TestGetAvailabilityHandlerMissingDoctor(t *testing.T) {
	router := newAvailabilityRouter(&fakeEngine{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?month=2024-05", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetAvailabilityHandlerMissingPeriod(t *testing.T) {
	router := newAvailabilityRouter(&fakeEngine{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?doctor_id=doc-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetAvailabilityHandlerInputErrorFromEngine(t *testing.T) {
	engine := &fakeEngine{err: availability.NewInputError("doctor_id required")}
	router := newAvailabilityRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?doctor_id=doc-1&month=2024-05", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetAvailabilityHandlerSourceFailure(t *testing.T) {
	engine := &fakeEngine{err: &availability.SourceError{Source: "legacy reception", Err: errors.New("dial tcp: refused")}}
	router := newAvailabilityRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?doctor_id=doc-1&month=2024-05", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "SERVER_ERROR" {
		t.Errorf("error field = %v, want SERVER_ERROR", resp["error"])
	}
	if resp["details"] == "" || resp["details"] == nil {
		t.Error("details field missing for source failure")
	}
}
