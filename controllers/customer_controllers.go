package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lunchly/lunchly/models"
	"github.com/lunchly/lunchly/stores"
	"github.com/lunchly/lunchly/utils"
)

type CustomerController struct {
	Store *stores.CustomerStore
}

func NewCustomerController(store *stores.CustomerStore) *CustomerController {
	return &CustomerController{Store: store}
}

type customerReqBody struct {
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	Phone      *string `json:"phone"`
	Notes      string  `json:"notes"`
}

// GetAllCustomers -> Mendapatkan semua customer, urut by last name
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Store.All()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", models.NewCustomerViews(customers))
}

// SearchCustomers -> Cari customer berdasarkan query ?name= (substring pada full name).
// Query kosong mengembalikan semua customer, sama seperti list biasa.
func (cc *CustomerController) SearchCustomers(c *gin.Context) {
	customers, err := cc.Store.GetBySearch(c.Query("name"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Search results", models.NewCustomerViews(customers))
}

// GetBestCustomers -> 10 customer dengan reservasi terbanyak
func (cc *CustomerController) GetBestCustomers(c *gin.Context) {
	customers, err := cc.Store.GetBest(10)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Top customers", models.NewCustomerViews(customers))
}

// CreateCustomer -> Membuat record customer baru
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req customerReqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Notes:      req.Notes,
	}

	if err := cc.Store.Save(&customer); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d)", customer.ID)

	utils.RespondJSON(c, http.StatusCreated, "Customer created", models.NewCustomerView(customer))
}

// GetCustomerByID -> Menampilkan detail 1 customer beserta reservasinya
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := parseIDParam(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Store.Get(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	reservations, err := cc.Store.GetReservations(customer.ID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", gin.H{
		"customer":     models.NewCustomerView(*customer),
		"reservations": reservations,
	})
}

// UpdateCustomer -> Edit field mutable customer, id tidak pernah berubah
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := parseIDParam(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req customerReqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.Store.Get(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	customer.FirstName = req.FirstName
	customer.MiddleName = req.MiddleName
	customer.LastName = req.LastName
	customer.Phone = req.Phone
	customer.Notes = req.Notes

	if err := cc.Store.Save(customer); err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", models.NewCustomerView(*customer))
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// respondStoreError memetakan jenis error dari store ke status HTTP
func respondStoreError(c *gin.Context, err error) {
	var vErr *stores.ValidationError
	switch {
	case errors.Is(err, stores.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.As(err, &vErr):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.ErrorLogger.Printf("store failure: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

var ErrInvalidID = &CustomError{"ID must be a number"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
