package controllers

import (
	"strconv"
	"time"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/services"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

func toPaymentResponse(payment models.Payment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:              payment.ID,
		TransactionID:   payment.TransactionID,
		InvoiceNo:       services.InvoiceNo(payment.TransactionID),
		BookingID:       payment.BookingID,
		Amount:          payment.Amount,
		PaymentMethod:   payment.PaymentMethod,
		PaymentStatus:   payment.PaymentStatus,
		PaymentDate:     payment.PaymentDate,
		ReferenceNumber: payment.ReferenceNumber,
		Notes:           payment.Notes,
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
	}
	if payment.Booking.ID != 0 {
		resp.BookingRef = payment.Booking.BookingReference
	}
	return resp
}

// GetAllPayments lấy danh sách thanh toán, lọc theo đơn/trạng thái/phương thức
func GetAllPayments(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	bookingIDStr := c.Query("bookingId")
	statusFilter := c.Query("status")
	methodFilter := c.Query("method")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Payment{})
	if bookingIDStr != "" {
		if bookingID, err := strconv.Atoi(bookingIDStr); err == nil {
			tx = tx.Where("booking_id = ?", bookingID)
		}
	}
	if statusFilter != "" {
		tx = tx.Where("payment_status = ?", statusFilter)
	}
	if methodFilter != "" {
		tx = tx.Where("payment_method = ?", methodFilter)
	}

	var totalPayments int64
	if err := tx.Count(&totalPayments).Error; err != nil {
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	if err := tx.Preload("Booking").
		Order("created_at desc").Offset(page * limit).Limit(limit).Find(&payments).Error; err != nil {
		response.ServerError(c)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		paymentResponses = append(paymentResponses, toPaymentResponse(payment))
	}

	response.SuccessWithPagination(c, paymentResponses, page, limit, int(totalPayments))
}

// CreatePayment ghi nhận khoản thanh toán mới cho đặt phòng
func CreatePayment(c *gin.Context) {
	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	payment, err := services.NewPaymentService(config.DB).Record(&request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, toPaymentResponse(*payment))
}

// GetPaymentDetail lấy chi tiết thanh toán theo ID
func GetPaymentDetail(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID thanh toán không hợp lệ")
		return
	}

	payment, err := services.NewPaymentService(config.DB).GetByID(uint(paymentID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toPaymentResponse(*payment))
}

// UpdatePaymentStatus cập nhật trạng thái thanh toán
func UpdatePaymentStatus(c *gin.Context) {
	var request dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	var paymentDate *time.Time
	if request.PaymentDate != "" {
		parsed, err := validator.ParseDate(request.PaymentDate)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		paymentDate = &parsed
	}

	payment, err := services.NewPaymentService(config.DB).UpdateStatus(request.ID, request.PaymentStatus, paymentDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toPaymentResponse(*payment))
}

// RefundPayment hoàn tiền một khoản thanh toán đã hoàn tất
func RefundPayment(c *gin.Context) {
	var request dto.RefundPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	payment, err := services.NewPaymentService(config.DB).Refund(request.ID, request.Reason)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.RefundResponse{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		RefundAmount:  payment.Amount,
		RefundStatus:  payment.PaymentStatus,
		RefundDate:    payment.UpdatedAt,
		Message:       "Hoàn tiền thành công",
	})
}

// GetPaymentSummary tổng hợp thanh toán của một đặt phòng
func GetPaymentSummary(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	summary, err := services.NewPaymentService(config.DB).Summary(uint(bookingID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, summary)
}

// GetPaymentHistory lấy toàn bộ thanh toán của một đặt phòng
func GetPaymentHistory(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	payments, err := services.NewPaymentService(config.DB).History(uint(bookingID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		paymentResponses = append(paymentResponses, toPaymentResponse(payment))
	}

	response.SuccessWithTotal(c, paymentResponses, len(paymentResponses))
}
