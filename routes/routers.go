package routes

import (
	"frontdesk/controllers"
	middlewares "frontdesk/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	router.Use(middlewares.SessionMiddleware())

	v1 := router.Group("/api/v1")

	v1.GET("/room", controllers.GetAllRooms)
	v1.POST("/room", controllers.CreateRoom)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", controllers.UpdateRoom)
	v1.PUT("/roomStatus", controllers.ChangeRoomStatus)
	v1.DELETE("/room/:id", controllers.DeactivateRoom)
	v1.GET("/roomTypes", controllers.GetRoomTypes)
	v1.POST("/roomTypes", controllers.CreateRoomType)

	v1.GET("/customer", controllers.GetAllCustomers)
	v1.POST("/customer", controllers.CreateCustomer)
	v1.GET("/customer/:id", controllers.GetCustomerDetail)
	v1.PUT("/customerUpdate", controllers.UpdateCustomer)
	v1.DELETE("/customer/:id", controllers.DeleteCustomer)

	v1.GET("/booking", controllers.GetAllBookings)
	v1.POST("/booking", controllers.CreateBooking)
	v1.GET("/booking/:id", controllers.GetBookingDetail)
	v1.GET("/bookingRef/:reference", controllers.GetBookingByReference)
	v1.PUT("/bookingUpdate", controllers.UpdateBooking)
	v1.PUT("/bookingStatus", controllers.ChangeBookingStatus)
	v1.POST("/bookingCancel", controllers.CancelBooking)
	v1.GET("/bookingHistory", controllers.GetBookingHistory)
	v1.GET("/checkAvailability", controllers.CheckAvailability)
	v1.GET("/today/checkins", controllers.GetTodayCheckIns)
	v1.GET("/today/checkouts", controllers.GetTodayCheckOuts)

	v1.GET("/payment", controllers.GetAllPayments)
	v1.POST("/payment", controllers.CreatePayment)
	v1.GET("/payment/:id", controllers.GetPaymentDetail)
	v1.PUT("/paymentStatus", controllers.UpdatePaymentStatus)
	v1.POST("/paymentRefund", controllers.RefundPayment)
	v1.GET("/paymentSummary/:bookingId", controllers.GetPaymentSummary)
	v1.GET("/paymentHistory/:bookingId", controllers.GetPaymentHistory)

	v1.GET("/invoiceByBooking/:bookingId", controllers.GetInvoiceByBooking)
	v1.GET("/invoiceByPayment/:paymentId", controllers.GetInvoiceByPayment)
}
