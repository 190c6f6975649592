package stores

import (
	"errors"
	"strings"

	"github.com/lunchly/lunchly/models"
	"gorm.io/gorm"
)

const defaultBestLimit = 10

type CustomerStore struct {
	DB *gorm.DB
}

func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{DB: db}
}

// All -> Mendapatkan semua customer, urut berdasarkan last name lalu first name
func (s *CustomerStore) All() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("last_name ASC, first_name ASC, id ASC").Find(&customers).Error; err != nil {
		return nil, &StoreError{Op: "list customers", Err: err}
	}
	return customers, nil
}

// Get -> Mendapatkan satu customer berdasarkan primary key
func (s *CustomerStore) Get(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get customer", Err: err}
	}
	return &customer, nil
}

// GetBySearch -> Cari customer via substring match (case-insensitive) pada
// composed full name. Query kosong mengembalikan hasil yang sama dengan All.
// Match dilakukan pada display name utuh, bukan per field, supaya query
// seperti "oh mar" bisa match "John Marsh".
func (s *CustomerStore) GetBySearch(query string) ([]models.Customer, error) {
	customers, err := s.All()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return customers, nil
	}

	matched := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FullName()), query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// GetBest -> Customer dengan jumlah reservasi terbanyak, descending by count.
// Tie dipecah dengan id ascending supaya hasilnya deterministik. Satu query
// agregasi saja; LEFT JOIN membuat customer tanpa reservasi ikut mengisi
// slot sisa kalau customer ber-reservasi kurang dari limit.
func (s *CustomerStore) GetBest(limit int) ([]models.Customer, error) {
	if limit <= 0 {
		limit = defaultBestLimit
	}

	var customers []models.Customer
	err := s.DB.Model(&models.Customer{}).
		Select("customers.*").
		Joins("LEFT JOIN reservations ON reservations.customer_id = customers.id").
		Group("customers.id").
		Order("COUNT(reservations.id) DESC, customers.id ASC").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, &StoreError{Op: "rank customers", Err: err}
	}
	return customers, nil
}

// Save -> Insert kalau id belum ada (id baru ditulis balik ke instance),
// update seluruh field mutable kalau id sudah ada. Validasi dijalankan
// sebelum ada tulisan apapun ke database.
func (s *CustomerStore) Save(customer *models.Customer) error {
	customer.FirstName = strings.TrimSpace(customer.FirstName)
	customer.LastName = strings.TrimSpace(customer.LastName)

	if customer.FirstName == "" {
		return &ValidationError{Field: "first_name", Message: "must not be empty"}
	}
	if customer.LastName == "" {
		return &ValidationError{Field: "last_name", Message: "must not be empty"}
	}

	if customer.ID == 0 {
		if err := s.DB.Create(customer).Error; err != nil {
			return &StoreError{Op: "create customer", Err: err}
		}
		return nil
	}

	if err := s.DB.Save(customer).Error; err != nil {
		return &StoreError{Op: "update customer", Err: err}
	}
	return nil
}

// GetReservations -> Semua reservasi milik satu customer, urut start_at ascending
func (s *CustomerStore) GetReservations(customerID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Where("customer_id = ?", customerID).
		Order("start_at ASC, id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, &StoreError{Op: "list reservations", Err: err}
	}
	return reservations, nil
}
