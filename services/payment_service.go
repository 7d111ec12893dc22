package services

import (
	"fmt"
	"time"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/validator"

	"gorm.io/gorm"
)

// amountEpsilon dung sai so sánh tiền kiểu float
const amountEpsilon = 0.01

// PaymentService là sổ thanh toán của đặt phòng: ghi nhận thanh toán từng phần,
// cộng dồn và đối chiếu với final_amount của đơn
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Record ghi nhận một khoản thanh toán mới ở trạng thái pending.
// Khóa theo đặt phòng để hai khoản song song không cùng đọc công nợ cũ rồi vượt trần.
func (s *PaymentService) Record(req *dto.CreatePaymentRequest) (*models.Payment, error) {
	if err := validator.ValidateCreatePayment(req); err != nil {
		return nil, err
	}

	unlock := bookingLocks.Lock(fmt.Sprintf("booking:%d", req.BookingID))
	defer unlock()

	var payment *models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, req.BookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", req.BookingID), err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
		}

		if booking.Status == models.BookingStatusCancelled {
			return errors.NewAppError(errors.ErrCodeBookingCancelled, "Không thể thanh toán cho đơn đã hủy", nil)
		}

		balanceDue, err := balanceDueFor(tx, &booking)
		if err != nil {
			return err
		}
		if req.Amount > balanceDue+amountEpsilon {
			return errors.NewAppError(errors.ErrCodeOverpayment,
				fmt.Sprintf("Số tiền %.2f vượt quá công nợ còn lại %.2f", req.Amount, balanceDue), nil)
		}

		payment = &models.Payment{
			BookingID:       req.BookingID,
			Amount:          req.Amount,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
			ReferenceNumber: req.ReferenceNumber,
			Notes:           req.Notes,
		}
		if err := tx.Create(payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi ghi nhận thanh toán", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// UpdateStatus chuyển trạng thái thanh toán qua state machine:
// pending -> completed (gán payment_date), pending -> failed, completed -> refunded.
// Khi completed kiểm tra lại tổng đã thu không vượt final_amount.
func (s *PaymentService) UpdateStatus(paymentID uint, newStatus string, paymentDate *time.Time) (*models.Payment, error) {
	if err := validator.ValidatePaymentStatus(newStatus); err != nil {
		return nil, err
	}

	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy thanh toán %d", paymentID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	unlock := bookingLocks.Lock(fmt.Sprintf("booking:%d", payment.BookingID))
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Đọc lại trong transaction sau khi đã giữ khóa
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
		}

		state := models.GetPaymentState(payment.PaymentStatus)

		switch newStatus {
		case models.PaymentStatusCompleted:
			var booking models.Booking
			if err := tx.First(&booking, payment.BookingID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
			}
			totalPaid, err := sumPayments(tx, payment.BookingID, models.PaymentStatusCompleted)
			if err != nil {
				return err
			}
			if totalPaid+payment.Amount > booking.FinalAmount+amountEpsilon {
				return errors.NewAppError(errors.ErrCodeOverpayment,
					fmt.Sprintf("Tổng đã thu %.2f vượt quá số tiền của đơn %.2f", totalPaid+payment.Amount, booking.FinalAmount), nil)
			}

			date := time.Now()
			if paymentDate != nil {
				date = *paymentDate
			}
			if err := state.Complete(&payment, date); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể hoàn tất thanh toán", err)
			}
		case models.PaymentStatusFailed:
			if err := state.Fail(&payment); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể đánh dấu thanh toán thất bại", err)
			}
		case models.PaymentStatusRefunded:
			if err := state.Refund(&payment); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể hoàn tiền", err)
			}
		default:
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("Không thể chuyển về trạng thái %s", newStatus), nil)
		}

		if err := tx.Save(&payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật thanh toán", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// Refund hoàn tiền một khoản đã thanh toán, khoản hoàn vẫn nằm trong lịch sử
// nhưng không còn tính vào tổng đã thu. Đổi trạng thái và ghi lý do trong cùng
// một transaction để không bao giờ có khoản hoàn thiếu lý do.
func (s *PaymentService) Refund(paymentID uint, reason string) (*models.Payment, error) {
	if reason == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Lý do hoàn tiền không được để trống", nil)
	}

	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy thanh toán %d", paymentID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	unlock := bookingLocks.Lock(fmt.Sprintf("booking:%d", payment.BookingID))
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Đọc lại trong transaction sau khi đã giữ khóa
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
		}

		state := models.GetPaymentState(payment.PaymentStatus)
		if err := state.Refund(&payment); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể hoàn tiền", err)
		}

		notes := fmt.Sprintf("REFUNDED: %s", reason)
		if payment.Notes != "" {
			notes = fmt.Sprintf("%s. Ghi chú cũ: %s", notes, payment.Notes)
		}
		payment.Notes = notes

		if err := tx.Save(&payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật thanh toán", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// GetByID lấy thanh toán theo ID
func (s *PaymentService) GetByID(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Preload("Booking").First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy thanh toán %d", paymentID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}
	return &payment, nil
}

// Summary tổng hợp thanh toán của một đặt phòng, luôn tính tươi từ DB
// để mọi thay đổi thanh toán hiện ra ngay ở lần đọc kế tiếp
func (s *PaymentService) Summary(bookingID uint) (*dto.PaymentSummaryResponse, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", bookingID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
	}

	var payments []models.Payment
	if err := s.db.Where("booking_id = ?", bookingID).Find(&payments).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}

	summary := &dto.PaymentSummaryResponse{
		BookingID:        bookingID,
		BookingReference: booking.BookingReference,
		TotalAmount:      booking.FinalAmount,
		PaymentCount:     len(payments),
	}
	for _, p := range payments {
		switch p.PaymentStatus {
		case models.PaymentStatusCompleted:
			summary.TotalPaid += p.Amount
		case models.PaymentStatusPending:
			summary.TotalPending += p.Amount
		case models.PaymentStatusRefunded:
			summary.TotalRefunded += p.Amount
		}
	}

	summary.BalanceDue = booking.FinalAmount - summary.TotalPaid - summary.TotalPending
	summary.BalanceDueDisplay = summary.BalanceDue
	if summary.BalanceDueDisplay < 0 {
		summary.BalanceDueDisplay = 0
	}
	// Công nợ âm nghĩa là đã thu quá tay, đánh cờ để UI cảnh báo
	summary.Overpaid = summary.BalanceDue < -amountEpsilon

	return summary, nil
}

// History lấy toàn bộ lịch sử thanh toán của một đặt phòng, mới nhất trước
func (s *PaymentService) History(bookingID uint) ([]models.Payment, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", bookingID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
	}

	var payments []models.Payment
	if err := s.db.Where("booking_id = ?", bookingID).Order("created_at DESC").Find(&payments).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn thanh toán", err)
	}
	return payments, nil
}

// sumPayments cộng các khoản của một đặt phòng theo trạng thái
func sumPayments(tx *gorm.DB, bookingID uint, status string) (float64, error) {
	var total float64
	err := tx.Model(&models.Payment{}).
		Where("booking_id = ? AND payment_status = ?", bookingID, status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi cộng dồn thanh toán", err)
	}
	return total, nil
}

// balanceDueFor tính công nợ còn lại = final_amount - đã thu - đang chờ
func balanceDueFor(tx *gorm.DB, booking *models.Booking) (float64, error) {
	totalPaid, err := sumPayments(tx, booking.ID, models.PaymentStatusCompleted)
	if err != nil {
		return 0, err
	}
	totalPending, err := sumPayments(tx, booking.ID, models.PaymentStatusPending)
	if err != nil {
		return 0, err
	}
	return booking.FinalAmount - totalPaid - totalPending, nil
}
