package dto

import "time"

// InvoiceItem là DTO cho một dòng trên hóa đơn
type InvoiceItem struct {
	Description   string  `json:"description"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	Amount        float64 `json:"amount"`
}

// InvoicePaymentItem là DTO cho một lần thanh toán trên hóa đơn
type InvoicePaymentItem struct {
	TransactionID string     `json:"transactionId"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
}

// InvoiceResponse là DTO cho hóa đơn sinh theo yêu cầu, không lưu DB
type InvoiceResponse struct {
	InvoiceNo        string    `json:"invoiceNo"`
	InvoiceDate      time.Time `json:"invoiceDate"`
	BookingID        uint      `json:"bookingId"`
	BookingReference string    `json:"bookingReference"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	RoomNumber string `json:"roomNumber"`
	RoomType   string `json:"roomType"`

	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	NumberOfNights int    `json:"numberOfNights"`

	Items    []InvoiceItem `json:"items"`
	Subtotal float64       `json:"subtotal"`
	Discount float64       `json:"discount"`
	Tax      float64       `json:"tax"`
	Total    float64       `json:"total"`

	PaymentStatus  string               `json:"paymentStatus"`
	PaymentMethod  string               `json:"paymentMethod"`
	PaymentDate    *time.Time           `json:"paymentDate,omitempty"`
	PaymentHistory []InvoicePaymentItem `json:"paymentHistory"`
}
