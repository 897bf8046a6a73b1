package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anjiri1684/quick_stay/notifications"
	"github.com/anjiri1684/quick_stay/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAvailabilityApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	h := NewBookingHandler(services.NewBookingService(db, notifications.NoopSender{}))
	app := fiber.New()
	app.Post("/api/v1/bookings/check-availability", h.CheckAvailability)
	return app, mock
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, payload
}

func TestCheckAvailabilityEnvelope(t *testing.T) {
	app, mock := newAvailabilityApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	resp, payload := postJSON(t, app, "/api/v1/bookings/check-availability",
		`{"room_id":"7b1f9d2e-3c4a-4f5b-8d6e-9f0a1b2c3d4e","check_in_date":"2024-06-01","check_out_date":"2024-06-03"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if payload["success"] != true {
		t.Fatalf("expected success envelope, got %v", payload)
	}
	if payload["is_available"] != true {
		t.Fatalf("expected is_available true, got %v", payload)
	}
}

func TestCheckAvailabilityRejectsMalformedDates(t *testing.T) {
	app, mock := newAvailabilityApp(t)

	resp, payload := postJSON(t, app, "/api/v1/bookings/check-availability",
		`{"room_id":"7b1f9d2e-3c4a-4f5b-8d6e-9f0a1b2c3d4e","check_in_date":"June 1st","check_out_date":"2024-06-03"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if payload["success"] != false {
		t.Fatalf("expected failure envelope, got %v", payload)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store was touched for malformed input: %v", err)
	}
}

func TestCheckAvailabilityInvertedRangeIsValidationError(t *testing.T) {
	app, _ := newAvailabilityApp(t)

	resp, payload := postJSON(t, app, "/api/v1/bookings/check-availability",
		`{"room_id":"7b1f9d2e-3c4a-4f5b-8d6e-9f0a1b2c3d4e","check_in_date":"2024-06-03","check_out_date":"2024-06-01"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if payload["success"] != false {
		t.Fatalf("expected failure envelope, got %v", payload)
	}
}
