package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic/models"
	"clinic/services/booking"

	"github.com/gin-gonic/gin"
)

type fakeBookingService struct {
	records []models.Appointment
	err     error
	gotReq  models.AppointmentRequest
}

func (f *fakeBookingService) BookAppointment(ctx context.Context, req models.AppointmentRequest) ([]models.Appointment, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func newAppointmentRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/appointments", NewAppointmentHandler(svc).CreateAppointmentHandler)
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentHandlerCreated(t *testing.T) {
	svc := &fakeBookingService{
		records: []models.Appointment{
			{ID: "a-1", BookingID: "b-1", DoctorID: "doc-1", Date: "2024-05-01", Time: "09:00", ServiceName: "Consultation", Status: models.AppointmentStatusActive},
		},
	}
	router := newAppointmentRouter(svc)

	w := postJSON(router, `{"doctor_id":"doc-1","date":"2024-05-01","time":"09:00","items":[{"name":"Consultation"}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}
	var resp struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Appointments) != 1 || resp.Appointments[0].BookingID != "b-1" {
		t.Fatalf("unexpected payload: %+v", resp.Appointments)
	}
	if svc.gotReq.DoctorID != "doc-1" || svc.gotReq.Time != "09:00" {
		t.Fatalf("service got request %+v", svc.gotReq)
	}
}

func TestCreateAppointmentHandlerMalformedBody(t *testing.T) {
	router := newAppointmentRouter(&fakeBookingService{})

	w := postJSON(router, `{"doctor_id":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateAppointmentHandlerValidationError(t *testing.T) {
	svc := &fakeBookingService{err: booking.NewValidationError("time required")}
	router := newAppointmentRouter(svc)

	w := postJSON(router, `{"doctor_id":"doc-1","date":"2024-05-01","items":[{"name":"Consultation"}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "time required" {
		t.Errorf("error field = %v", resp["error"])
	}
}

func TestCreateAppointmentHandlerConflict(t *testing.T) {
	svc := &fakeBookingService{err: &booking.ConflictError{DoctorID: "doc-1", Date: "2024-05-01", Time: "09:00"}}
	router := newAppointmentRouter(svc)

	w := postJSON(router, `{"doctor_id":"doc-1","date":"2024-05-01","time":"09:00","items":[{"name":"Consultation"}]}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "CONFLICT" {
		t.Errorf("error field = %v, want CONFLICT", resp["error"])
	}
}

func TestCreateAppointmentHandlerServerError(t *testing.T) {
	svc := &fakeBookingService{err: errors.New("mongo: no reachable servers")}
	router := newAppointmentRouter(svc)

	w := postJSON(router, `{"doctor_id":"doc-1","date":"2024-05-01","time":"09:00","items":[{"name":"Consultation"}]}`)
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
}
