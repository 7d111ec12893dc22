package services

import (
	"fmt"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/validator"

	"gorm.io/gorm"
)

// InvoiceService sinh hóa đơn theo yêu cầu từ dữ liệu đặt phòng + thanh toán,
// không lưu hóa đơn thành bản ghi riêng
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// InvoiceNo sinh số hóa đơn từ mã giao dịch
func InvoiceNo(transactionID string) string {
	return fmt.Sprintf("INV-%s", transactionID)
}

// ByBooking sinh hóa đơn cho đặt phòng dựa trên khoản thanh toán completed gần nhất
func (s *InvoiceService) ByBooking(bookingID uint) (*dto.InvoiceResponse, error) {
	var booking models.Booking
	if err := s.db.Preload("Customer").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", bookingID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
	}

	var payment models.Payment
	err := s.db.Where("booking_id = ? AND payment_status = ?", bookingID, models.PaymentStatusCompleted).
		Order("payment_date DESC, created_at DESC").
		First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNoCompletedPayment,
				fmt.Sprintf("Đơn %s chưa có khoản thanh toán hoàn tất nào", booking.BookingReference), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	return s.assemble(&booking, &payment)
}

// ByPayment sinh hóa đơn nhận cho đúng khoản thanh toán được chỉ định
func (s *InvoiceService) ByPayment(paymentID uint) (*dto.InvoiceResponse, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy thanh toán %d", paymentID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	var booking models.Booking
	if err := s.db.Preload("Customer").Preload("Room").First(&booking, payment.BookingID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
	}

	return s.assemble(&booking, &payment)
}

func (s *InvoiceService) assemble(booking *models.Booking, payment *models.Payment) (*dto.InvoiceResponse, error) {
	var payments []models.Payment
	if err := s.db.Where("booking_id = ?", booking.ID).Order("created_at ASC").Find(&payments).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn lịch sử thanh toán", err)
	}

	history := make([]dto.InvoicePaymentItem, 0, len(payments))
	for _, p := range payments {
		history = append(history, dto.InvoicePaymentItem{
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
			PaymentMethod: p.PaymentMethod,
			PaymentStatus: p.PaymentStatus,
			PaymentDate:   p.PaymentDate,
		})
	}

	invoice := &dto.InvoiceResponse{
		InvoiceNo:        InvoiceNo(payment.TransactionID),
		InvoiceDate:      payment.CreatedAt,
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		CustomerName:     booking.Customer.FullName(),
		CustomerEmail:    booking.Customer.Email,
		CustomerPhone:    booking.Customer.Phone,
		RoomNumber:       booking.Room.RoomNumber,
		RoomType:         booking.Room.RoomType,
		CheckInDate:      booking.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:     booking.CheckOutDate.Format(validator.DateLayout),
		NumberOfNights:   booking.NumberOfNights,
		Items: []dto.InvoiceItem{
			{
				Description:   fmt.Sprintf("Phòng %s - %s", booking.Room.RoomNumber, booking.Room.RoomType),
				Nights:        booking.NumberOfNights,
				PricePerNight: booking.RoomPrice,
				Amount:        booking.TotalAmount,
			},
		},
		Subtotal:       booking.TotalAmount,
		Discount:       booking.Discount,
		Tax:            booking.Tax,
		Total:          booking.FinalAmount,
		PaymentStatus:  payment.PaymentStatus,
		PaymentMethod:  payment.PaymentMethod,
		PaymentDate:    payment.PaymentDate,
		PaymentHistory: history,
	}

	return invoice, nil
}
