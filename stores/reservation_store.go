package stores

import (
	"errors"

	"github.com/lunchly/lunchly/models"
	"gorm.io/gorm"
)

type ReservationStore struct {
	DB *gorm.DB
}

func NewReservationStore(db *gorm.DB) *ReservationStore {
	return &ReservationStore{DB: db}
}

// Get -> Mendapatkan satu reservasi berdasarkan primary key
func (s *ReservationStore) Get(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get reservation", Err: err}
	}
	return &reservation, nil
}

// Save -> Insert kalau id belum ada, update kalau sudah. Update hanya
// menyentuh start_at/num_guests/notes; owner (customer_id) tidak pernah
// di-reassign setelah create. Validasi selalu sebelum tulisan apapun.
func (s *ReservationStore) Save(reservation *models.Reservation) error {
	if reservation.NumGuests <= 0 {
		return &ValidationError{Field: "num_guests", Message: "must be a positive number"}
	}
	if reservation.StartAt.IsZero() {
		return &ValidationError{Field: "start_at", Message: "must be a valid date and time"}
	}

	// Cek apakah customer pemilik reservasi memang ada
	var count int64
	if err := s.DB.Model(&models.Customer{}).
		Where("id = ?", reservation.CustomerID).
		Count(&count).Error; err != nil {
		return &StoreError{Op: "check reservation owner", Err: err}
	}
	if count == 0 {
		return &ValidationError{Field: "customer_id", Message: "must reference an existing customer"}
	}

	if reservation.ID == 0 {
		if err := s.DB.Create(reservation).Error; err != nil {
			return &StoreError{Op: "create reservation", Err: err}
		}
		return nil
	}

	err := s.DB.Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Updates(map[string]interface{}{
			"start_at":   reservation.StartAt,
			"num_guests": reservation.NumGuests,
			"notes":      reservation.Notes,
		}).Error
	if err != nil {
		return &StoreError{Op: "update reservation", Err: err}
	}
	return nil
}
