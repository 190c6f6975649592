package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lunchly/lunchly/models"
	"github.com/lunchly/lunchly/stores"
	"github.com/lunchly/lunchly/utils"
)

type ReservationController struct {
	Store     *stores.ReservationStore
	Customers *stores.CustomerStore
}

func NewReservationController(store *stores.ReservationStore, customers *stores.CustomerStore) *ReservationController {
	return &ReservationController{Store: store, Customers: customers}
}

// Jumlah tamu dan startAt datang sebagai text dari form; konversi
// dilakukan eksplisit di boundary store, bukan diam-diam.
type reservationReqBody struct {
	StartAt   string `json:"start_at"`
	NumGuests string `json:"num_guests"`
	Notes     string `json:"notes"`
}

// AddReservation -> Membuat reservasi baru untuk satu customer
func (rc *ReservationController) AddReservation(c *gin.Context) {
	customerID, err := parseIDParam(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Cek dulu apakah customer-nya ada
	customer, err := rc.Customers.Get(customerID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	var req reservationReqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	startAt, err := stores.ParseStartAt(req.StartAt)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	numGuests, err := stores.ParseGuestCount(req.NumGuests)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	reservation := models.Reservation{
		CustomerID: customer.ID,
		StartAt:    startAt,
		NumGuests:  numGuests,
		Notes:      req.Notes,
	}

	if err := rc.Store.Save(&reservation); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("New reservation created (ID=%d) for CustomerID=%d", reservation.ID, customer.ID)

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetReservationByID -> Menampilkan detail 1 reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := parseIDParam(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Store.Get(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> Edit waktu/jumlah tamu/notes reservasi.
// Owner (customer_id) tidak bisa di-reassign lewat endpoint ini.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := parseIDParam(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req reservationReqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Store.Get(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	startAt, err := stores.ParseStartAt(req.StartAt)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	numGuests, err := stores.ParseGuestCount(req.NumGuests)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	reservation.StartAt = startAt
	reservation.NumGuests = numGuests
	reservation.Notes = req.Notes

	if err := rc.Store.Save(reservation); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}
