package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Payment method
const (
	PaymentMethodCash       = "cash"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
	PaymentMethodUPI        = "upi"
	PaymentMethodNetBanking = "net_banking"
	PaymentMethodWallet     = "wallet"
)

type Payment struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	TransactionID   string     `json:"transactionId" gorm:"unique;size:30"`
	BookingID       uint       `json:"bookingId" gorm:"not null;index"`
	Booking         Booking    `json:"booking" gorm:"foreignKey:BookingID"`
	Amount          float64    `json:"amount" gorm:"not null"`
	PaymentMethod   string     `json:"paymentMethod" gorm:"not null"`
	PaymentStatus   string     `json:"paymentStatus" gorm:"default:pending;index"`
	PaymentDate     *time.Time `json:"paymentDate,omitempty"` // Ngày thanh toán, gán khi chuyển sang completed
	ReferenceNumber string     `json:"referenceNumber"`       // Mã tham chiếu ngân hàng/UPI
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate sinh mã giao dịch duy nhất dạng TXN<yyyymmddhhmmss><6 hex>
func (payment *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if payment.TransactionID != "" {
		return nil
	}

	payment.TransactionID = fmt.Sprintf("TXN%s%s",
		time.Now().Format("20060102150405"),
		strings.ToUpper(uuid.NewString()[:6]))

	var count int64
	if err := tx.Model(&Payment{}).Where("transaction_id = ?", payment.TransactionID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("mã giao dịch đã tồn tại, hãy thử lại")
	}
	return nil
}

// IsValidPaymentMethod kiểm tra phương thức thanh toán hợp lệ
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodWallet:
		return true
	}
	return false
}
