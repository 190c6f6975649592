package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lunchly/lunchly/controllers"
	"github.com/lunchly/lunchly/middlewares"
	"github.com/lunchly/lunchly/stores"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	customerStore := stores.NewCustomerStore(db)
	reservationStore := stores.NewReservationStore(db)

	customerCtrl := controllers.NewCustomerController(customerStore)
	reservationCtrl := controllers.NewReservationController(reservationStore, customerStore)

	// Limiter khusus endpoint tulis
	writeLimiter := middlewares.NewWriteRateLimiter()

	customers := r.Group("/customers")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.GET("/search", customerCtrl.SearchCustomers)
		customers.GET("/top", customerCtrl.GetBestCustomers)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)

		customers.POST("", writeLimiter, customerCtrl.CreateCustomer)
		customers.PATCH("/:customer_id", writeLimiter, customerCtrl.UpdateCustomer)
		customers.POST("/:customer_id/reservations", writeLimiter, reservationCtrl.AddReservation)
	}

	reservations := r.Group("/reservations")
	{
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.PATCH("/:reservation_id", writeLimiter, reservationCtrl.UpdateReservation)
	}

	return r
}
