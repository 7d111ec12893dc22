package dto

import "time"

// CreatePaymentRequest là DTO cho request ghi nhận thanh toán
type CreatePaymentRequest struct {
	BookingID       uint    `json:"bookingId" binding:"required"`
	Amount          float64 `json:"amount" binding:"required"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required"`
	ReferenceNumber string  `json:"referenceNumber"`
	Notes           string  `json:"notes"`
}

// UpdatePaymentStatusRequest là DTO cho request cập nhật trạng thái thanh toán
type UpdatePaymentStatusRequest struct {
	ID            uint   `json:"id" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	PaymentDate   string `json:"paymentDate"` // dd/MM/yyyy, mặc định là hiện tại khi completed
}

// RefundPaymentRequest là DTO cho request hoàn tiền
type RefundPaymentRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type PaymentResponse struct {
	ID              uint       `json:"id"`
	TransactionID   string     `json:"transactionId"`
	InvoiceNo       string     `json:"invoiceNo"`
	BookingID       uint       `json:"bookingId"`
	BookingRef      string     `json:"bookingReference,omitempty"`
	Amount          float64    `json:"amount"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaymentDate     *time.Time `json:"paymentDate,omitempty"`
	ReferenceNumber string     `json:"referenceNumber,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// RefundResponse là DTO cho response hoàn tiền
type RefundResponse struct {
	PaymentID     uint      `json:"paymentId"`
	TransactionID string    `json:"transactionId"`
	RefundAmount  float64   `json:"refundAmount"`
	RefundStatus  string    `json:"refundStatus"`
	RefundDate    time.Time `json:"refundDate"`
	Message       string    `json:"message"`
}

// PaymentSummaryResponse là DTO cho bảng tổng hợp thanh toán của một đặt phòng
type PaymentSummaryResponse struct {
	BookingID         uint    `json:"bookingId"`
	BookingReference  string  `json:"bookingReference"`
	TotalAmount       float64 `json:"totalAmount"`
	TotalPaid         float64 `json:"totalPaid"`
	TotalPending      float64 `json:"totalPending"`
	TotalRefunded     float64 `json:"totalRefunded"`
	BalanceDue        float64 `json:"balanceDue"`
	BalanceDueDisplay float64 `json:"balanceDueDisplay"` // Không âm, dùng cho hiển thị
	Overpaid          bool    `json:"overpaid"`
	PaymentCount      int     `json:"paymentCount"`
}
