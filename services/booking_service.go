package services

import (
	"fmt"
	"time"

	"frontdesk/builders"
	"frontdesk/commands"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/validator"

	"gorm.io/gorm"
)

// BookingService quản lý vòng đời đặt phòng
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create tạo đặt phòng mới, kiểm tra lịch phòng và ghi đơn trong cùng một transaction.
// Khóa theo phòng để hai request song song không cùng qua được bước kiểm tra lịch.
// Đơn tạo xong ở trạng thái confirmed luôn, không có bước duyệt riêng.
func (s *BookingService) Create(req *dto.CreateBookingRequest) (*models.Booking, error) {
	checkIn, checkOut, err := validator.ValidateCreateBooking(req)
	if err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}

	var customer models.Customer
	if err := s.db.First(&customer, req.CustomerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy khách hàng %d", req.CustomerID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn khách hàng", err)
	}

	unlock := roomLocks.Lock(fmt.Sprintf("room:%d", req.RoomID))
	defer unlock()

	var booking *models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, req.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy phòng %d", req.RoomID), err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}

		if !room.IsActive {
			return errors.NewAppError(errors.ErrCodeRoomInactive, fmt.Sprintf("Phòng %s đang ngừng khai thác", room.RoomNumber), nil)
		}
		if req.NumberOfGuests > room.Capacity {
			return errors.NewAppError(errors.ErrCodeCapacityExceeded,
				fmt.Sprintf("Số khách (%d) vượt quá sức chứa của phòng (%d)", req.NumberOfGuests, room.Capacity), nil)
		}

		available, conflicting, err := NewAvailabilityService(tx).RoomAvailable(req.RoomID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if !available {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable,
				fmt.Sprintf("Phòng %s đã có khách trong khoảng thời gian này", room.RoomNumber),
				fmt.Errorf("%d đơn trùng lịch", len(conflicting)))
		}

		booking = builders.NewBookingBuilder().
			WithCustomer(req.CustomerID).
			WithRoom(req.RoomID).
			WithStay(checkIn, checkOut).
			WithGuests(req.NumberOfGuests).
			WithPricing(room.PricePerNight, req.Discount, req.TaxPercentage).
			WithSpecialRequests(req.SpecialRequests).
			WithStatus(models.BookingStatusConfirmed).
			Build()

		if err := commands.NewCreateBookingCommand(booking, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo đặt phòng", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(booking.ID)
}

// GetByID lấy đặt phòng theo ID kèm khách hàng và phòng
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Customer").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", bookingID), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
	}
	return &booking, nil
}

// Update sửa đặt phòng, đổi ngày sẽ kiểm tra lại lịch (bỏ qua chính đơn) và tính lại tiền
func (s *BookingService) Update(req *dto.UpdateBookingRequest) (*models.Booking, error) {
	unlock := bookingLocks.Lock(fmt.Sprintf("booking:%d", req.ID))
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, req.ID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", req.ID), err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
		}

		if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCheckedOut {
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("Không thể sửa đơn đã %s", booking.Status), nil)
		}

		newCheckIn := booking.CheckInDate
		newCheckOut := booking.CheckOutDate
		if req.CheckInDate != "" {
			parsed, err := validator.ParseDate(req.CheckInDate)
			if err != nil {
				return err
			}
			newCheckIn = parsed
		}
		if req.CheckOutDate != "" {
			parsed, err := validator.ParseDate(req.CheckOutDate)
			if err != nil {
				return err
			}
			newCheckOut = parsed
		}

		datesChanged := !newCheckIn.Equal(booking.CheckInDate) || !newCheckOut.Equal(booking.CheckOutDate)
		if datesChanged {
			if err := validator.ValidateBookingDates(newCheckIn, newCheckOut); err != nil {
				return err
			}

			unlockRoom := roomLocks.Lock(fmt.Sprintf("room:%d", booking.RoomID))
			defer unlockRoom()

			available, conflicting, err := NewAvailabilityService(tx).RoomAvailable(booking.RoomID, newCheckIn, newCheckOut, booking.ID)
			if err != nil {
				return err
			}
			if !available {
				return errors.NewAppError(errors.ErrCodeRoomUnavailable,
					"Phòng đã có khách trong khoảng thời gian mới",
					fmt.Errorf("%d đơn trùng lịch", len(conflicting)))
			}

			booking.CheckInDate = newCheckIn
			booking.CheckOutDate = newCheckOut
			booking.NumberOfNights = models.CalculateNights(newCheckIn, newCheckOut)
		}

		if req.Discount != nil {
			if *req.Discount < 0 {
				return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giảm giá không được âm", nil)
			}
			booking.Discount = *req.Discount
		}
		if req.NumberOfGuests != nil {
			if *req.NumberOfGuests <= 0 {
				return errors.NewAppError(errors.ErrCodeValidation, "Số khách phải lớn hơn 0", nil)
			}
			var room models.Room
			if err := tx.First(&room, booking.RoomID).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
			}
			if *req.NumberOfGuests > room.Capacity {
				return errors.NewAppError(errors.ErrCodeCapacityExceeded,
					fmt.Sprintf("Số khách (%d) vượt quá sức chứa của phòng (%d)", *req.NumberOfGuests, room.Capacity), nil)
			}
			booking.NumberOfGuests = *req.NumberOfGuests
		}
		if req.SpecialRequests != nil {
			booking.SpecialRequests = *req.SpecialRequests
		}

		// Tính lại tiền theo số đêm và giảm giá hiện tại, giữ nguyên % thuế đã chốt lúc đặt
		booking.TotalAmount, booking.Tax, booking.FinalAmount =
			models.CalculateBookingCost(booking.RoomPrice, booking.NumberOfNights, booking.Discount, booking.TaxPercentage)

		// Số tiền mới không được thấp hơn những khoản đã thu và đang chờ trên sổ
		balanceDue, err := balanceDueFor(tx, &booking)
		if err != nil {
			return err
		}
		if balanceDue < -amountEpsilon {
			return errors.NewAppError(errors.ErrCodeOverpayment,
				fmt.Sprintf("Số tiền mới %.2f thấp hơn tổng đã thu và đang chờ %.2f",
					booking.FinalAmount, booking.FinalAmount-balanceDue), nil)
		}

		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật đặt phòng", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(req.ID)
}

// ChangeStatus chuyển trạng thái đặt phòng qua state machine.
// Trả phòng bị chặn khi còn công nợ (chính sách chặt, xem payment_service).
func (s *BookingService) ChangeStatus(bookingID uint, newStatus string) (*models.Booking, error) {
	if err := validator.ValidateBookingStatus(newStatus); err != nil {
		return nil, err
	}

	unlock := bookingLocks.Lock(fmt.Sprintf("booking:%d", bookingID))
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", bookingID), err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
		}

		state := models.GetBookingState(booking.Status)
		now := time.Now()

		switch newStatus {
		case models.BookingStatusConfirmed:
			if err := state.Confirm(&booking); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể xác nhận đơn", err)
			}
		case models.BookingStatusCheckedIn:
			if err := state.CheckIn(&booking); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể nhận phòng", err)
			}
			booking.CheckedInAt = &now
			if err := setRoomStatus(tx, booking.RoomID, models.RoomStatusOccupied); err != nil {
				return err
			}
		case models.BookingStatusCheckedOut:
			if booking.Status == models.BookingStatusCheckedIn {
				balanceDue, err := balanceDueFor(tx, &booking)
				if err != nil {
					return err
				}
				if balanceDue > amountEpsilon {
					return errors.NewAppError(errors.ErrCodeUnpaidBalance,
						fmt.Sprintf("Đơn còn công nợ %.2f, thanh toán đủ trước khi trả phòng", balanceDue), nil)
				}
			}
			if err := state.CheckOut(&booking); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể trả phòng", err)
			}
			booking.CheckedOutAt = &now
			if err := setRoomStatus(tx, booking.RoomID, models.RoomStatusAvailable); err != nil {
				return err
			}
		case models.BookingStatusCancelled:
			return s.cancelInTx(tx, &booking)
		default:
			return errors.NewAppError(errors.ErrCodeInvalidTransition,
				fmt.Sprintf("Không thể chuyển về trạng thái %s", newStatus), nil)
		}

		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật trạng thái đặt phòng", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(bookingID)
}

// Cancel hủy đặt phòng, chỉ cho phép từ pending/confirmed. Không tự hoàn tiền,
// hoàn tiền là thao tác riêng trên từng khoản thanh toán.
func (s *BookingService) Cancel(bookingID uint) (*models.Booking, error) {
	unlock := bookingLocks.Lock(fmt.Sprintf("booking:%d", bookingID))
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy đặt phòng %d", bookingID), err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
		}
		return s.cancelInTx(tx, &booking)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(bookingID)
}

func (s *BookingService) cancelInTx(tx *gorm.DB, booking *models.Booking) error {
	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(booking); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể hủy đơn", err)
	}

	if err := commands.NewUpdateBookingCommand(booking, tx).Execute(); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi hủy đặt phòng", err)
	}

	// Nhả cờ phòng nếu đang giữ
	var room models.Room
	if err := tx.First(&room, booking.RoomID).Error; err == nil {
		if room.Status == models.RoomStatusReserved || room.Status == models.RoomStatusOccupied {
			room.Status = models.RoomStatusAvailable
			if err := tx.Save(&room).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật trạng thái phòng", err)
			}
		}
	}
	return nil
}

// TodayCheckIns lấy các đơn nhận phòng hôm nay cho lễ tân
func (s *BookingService) TodayCheckIns() ([]models.Booking, error) {
	return s.bookingsOn("check_in_date", []string{models.BookingStatusPending, models.BookingStatusConfirmed})
}

// TodayCheckOuts lấy các đơn trả phòng hôm nay
func (s *BookingService) TodayCheckOuts() ([]models.Booking, error) {
	return s.bookingsOn("check_out_date", []string{models.BookingStatusCheckedIn})
}

func (s *BookingService) bookingsOn(dateColumn string, statuses []string) ([]models.Booking, error) {
	today := time.Now().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.Preload("Customer").Preload("Room").
		Where(dateColumn+" >= ? AND "+dateColumn+" < ?", today, tomorrow).
		Where("status IN ?", statuses).
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đặt phòng", err)
	}
	return bookings, nil
}

func setRoomStatus(tx *gorm.DB, roomID uint, status string) error {
	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Update("status", status).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật trạng thái phòng", err)
	}
	return nil
}
