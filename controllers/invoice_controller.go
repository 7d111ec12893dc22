package controllers

import (
	"strconv"

	"frontdesk/config"
	"frontdesk/response"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
)

// GetInvoiceByBooking sinh hóa đơn cho đặt phòng từ khoản thanh toán hoàn tất gần nhất
func GetInvoiceByBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).ByBooking(uint(bookingID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, invoice)
}

// GetInvoiceByPayment sinh hóa đơn nhận cho một khoản thanh toán cụ thể
func GetInvoiceByPayment(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("paymentId"))
	if err != nil {
		response.BadRequest(c, "ID thanh toán không hợp lệ")
		return
	}

	invoice, err := services.NewInvoiceService(config.DB).ByPayment(uint(paymentID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, invoice)
}
