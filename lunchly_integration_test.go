package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lunchly/lunchly/models"
	"github.com/lunchly/lunchly/router"
	"github.com/lunchly/lunchly/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndBooking menguji flow utama:
// 1. Create customer
// 2. Tambah dua reservasi
// 3. Detail customer => reservasi urut start_at
// 4. Edit reservasi => tidak menambah baris
// 5. Search by name
// 6. Top customers
func TestEndToEndBooking(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db)

	customerID := createCustomerTest(t, r)

	firstResID := addReservationTest(t, r, customerID, "2026-09-12T20:00", "2")
	addReservationTest(t, r, customerID, "2026-09-12T18:30", "4")

	checkCustomerDetailTest(t, r, customerID)
	editReservationTest(t, r, firstResID)
	searchCustomerTest(t, r)
	topCustomersTest(t, r, customerID)
}

// setupTestDB -> migrasi model di SQLite in-memory + seed data
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Customer{},
		&models.Reservation{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Customer kedua tanpa reservasi, untuk cek ranking
	db.Create(&models.Customer{
		FirstName: "John",
		LastName:  "Marsh",
	})

	return db
}

// createCustomerTest -> POST /customers => 201 => id baru
func createCustomerTest(t *testing.T, r *gin.Engine) uint {
	bodyData := map[string]interface{}{
		"first_name":  "Ada",
		"middle_name": "Marie",
		"last_name":   "Shelton",
		"phone":       "555-1234",
		"notes":       "likes the window table",
	}
	bodyBytes, _ := json.Marshal(bodyData)

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("createCustomerTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			ID       uint   `json:"id"`
			FullName string `json:"full_name"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Status {
		t.Fatalf("createCustomerTest: status=false, msg=%s", resp.Message)
	}
	if resp.Data.FullName != "Ada Marie Shelton" {
		t.Fatalf("createCustomerTest: expected full name 'Ada Marie Shelton', got %s", resp.Data.FullName)
	}
	if resp.Data.ID == 0 {
		t.Fatalf("createCustomerTest: id not assigned")
	}

	return resp.Data.ID
}

// addReservationTest -> POST /customers/:id/reservations => 201
func addReservationTest(t *testing.T, r *gin.Engine, customerID uint, startAt, numGuests string) uint {
	bodyData := map[string]string{
		"start_at":   startAt,
		"num_guests": numGuests,
	}
	bodyBytes, _ := json.Marshal(bodyData)

	req := httptest.NewRequest(http.MethodPost,
		"/customers/"+uintToString(customerID)+"/reservations", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("addReservationTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			ID         uint `json:"id"`
			CustomerID uint `json:"customer_id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Status || resp.Data.ID == 0 {
		t.Fatalf("addReservationTest: bad response body=%s", w.Body.String())
	}
	if resp.Data.CustomerID != customerID {
		t.Fatalf("addReservationTest: wrong owner, want %d got %d", customerID, resp.Data.CustomerID)
	}

	return resp.Data.ID
}

// checkCustomerDetailTest -> GET /customers/:id => reservasi urut start_at ascending
func checkCustomerDetailTest(t *testing.T, r *gin.Engine, customerID uint) {
	req := httptest.NewRequest(http.MethodGet, "/customers/"+uintToString(customerID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("checkCustomerDetailTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Customer struct {
				FullName string `json:"full_name"`
			} `json:"customer"`
			Reservations []struct {
				ID        uint   `json:"id"`
				StartAt   string `json:"start_at"`
				NumGuests int    `json:"num_guests"`
			} `json:"reservations"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Status {
		t.Fatalf("checkCustomerDetailTest: status=false body=%s", w.Body.String())
	}
	if len(resp.Data.Reservations) != 2 {
		t.Fatalf("checkCustomerDetailTest: want 2 reservations, got %d", len(resp.Data.Reservations))
	}
	// Reservasi jam 18:30 (4 tamu) harus tampil sebelum jam 20:00 (2 tamu)
	if resp.Data.Reservations[0].NumGuests != 4 {
		t.Fatalf("checkCustomerDetailTest: reservations not ordered by start_at, body=%s", w.Body.String())
	}
}

// editReservationTest -> PATCH /reservations/:id => update in place
func editReservationTest(t *testing.T, r *gin.Engine, reservationID uint) {
	bodyData := map[string]string{
		"start_at":   "2026-09-12T21:00",
		"num_guests": "3",
		"notes":      "moved later",
	}
	bodyBytes, _ := json.Marshal(bodyData)

	req := httptest.NewRequest(http.MethodPatch,
		"/reservations/"+uintToString(reservationID), bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("editReservationTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			ID        uint   `json:"id"`
			NumGuests int    `json:"num_guests"`
			Notes     string `json:"notes"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.NumGuests != 3 || resp.Data.Notes != "moved later" {
		t.Fatalf("editReservationTest: update not reflected, body=%s", w.Body.String())
	}
}

// searchCustomerTest -> GET /customers/search?name=shelt => match Ada Shelton
func searchCustomerTest(t *testing.T, r *gin.Engine) {
	req := httptest.NewRequest(http.MethodGet, "/customers/search?name=shelt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("searchCustomerTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   []struct {
			FullName string `json:"full_name"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) != 1 {
		t.Fatalf("searchCustomerTest: want 1 match, got %d", len(resp.Data))
	}
	if resp.Data[0].FullName != "Ada Marie Shelton" {
		t.Fatalf("searchCustomerTest: want 'Ada Marie Shelton', got %s", resp.Data[0].FullName)
	}
}

// topCustomersTest -> GET /customers/top => customer dengan reservasi di urutan pertama
func topCustomersTest(t *testing.T, r *gin.Engine, customerID uint) {
	req := httptest.NewRequest(http.MethodGet, "/customers/top", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("topCustomersTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) < 1 {
		t.Fatalf("topCustomersTest: empty result")
	}
	if resp.Data[0].ID != customerID {
		t.Fatalf("topCustomersTest: expected customer %d first, got %d", customerID, resp.Data[0].ID)
	}
}

// Helper uintToString
func uintToString(num uint) string {
	return strconv.FormatUint(uint64(num), 10)
}
