package services

import (
	"math"
	"strings"
	"sync"
	"testing"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

func newBookingRequest(customerID, roomID uint, checkInDays, checkOutDays int) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		CustomerID:     customerID,
		RoomID:         roomID,
		CheckInDate:    futureDate(checkInDays),
		CheckOutDate:   futureDate(checkOutDays),
		NumberOfGuests: 2,
	}
}

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "201", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")

	service := NewBookingService(db)
	booking, err := service.Create(newBookingRequest(customer.ID, room.ID, 30, 33))
	if err != nil {
		t.Fatalf("Create() lỗi: %v", err)
	}

	if !strings.HasPrefix(booking.BookingReference, "BK") {
		t.Errorf("mã đặt phòng = %s, phải bắt đầu bằng BK", booking.BookingReference)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %s, want %s", booking.Status, models.BookingStatusConfirmed)
	}
	if booking.NumberOfNights != 3 {
		t.Errorf("số đêm = %d, want 3", booking.NumberOfNights)
	}
	if math.Abs(booking.FinalAmount-3000) > 1e-6 {
		t.Errorf("finalAmount = %v, want 3000", booking.FinalAmount)
	}
	if booking.Customer.ID != customer.ID || booking.Room.ID != room.ID {
		t.Error("đơn trả về phải kèm khách hàng và phòng")
	}
}

func TestCreateBookingWithDiscountAndTax(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "202", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")

	req := newBookingRequest(customer.ID, room.ID, 30, 33)
	req.Discount = 500
	req.TaxPercentage = 10

	booking, err := NewBookingService(db).Create(req)
	if err != nil {
		t.Fatalf("Create() lỗi: %v", err)
	}

	// 3000 - 500 = 2500, thuế 10% trên 2500 = 250
	if math.Abs(booking.Tax-250) > 1e-6 {
		t.Errorf("tax = %v, want 250", booking.Tax)
	}
	if math.Abs(booking.FinalAmount-2750) > 1e-6 {
		t.Errorf("finalAmount = %v, want 2750", booking.FinalAmount)
	}
}

func TestCreateBookingRejections(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "203", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	t.Run("ngày nhận trong quá khứ", func(t *testing.T) {
		req := newBookingRequest(customer.ID, room.ID, -3, 2)
		_, err := service.Create(req)
		if !errors.HasCode(err, errors.ErrCodeValidation) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeValidation)
		}
	})

	t.Run("khách hàng không tồn tại", func(t *testing.T) {
		_, err := service.Create(newBookingRequest(999, room.ID, 30, 32))
		if !errors.HasCode(err, errors.ErrCodeDBNotFound) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeDBNotFound)
		}
	})

	t.Run("phòng không tồn tại", func(t *testing.T) {
		_, err := service.Create(newBookingRequest(customer.ID, 999, 30, 32))
		if !errors.HasCode(err, errors.ErrCodeDBNotFound) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeDBNotFound)
		}
	})

	t.Run("vượt sức chứa", func(t *testing.T) {
		req := newBookingRequest(customer.ID, room.ID, 30, 32)
		req.NumberOfGuests = 5
		_, err := service.Create(req)
		if !errors.HasCode(err, errors.ErrCodeCapacityExceeded) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeCapacityExceeded)
		}
	})

	t.Run("phòng ngừng khai thác", func(t *testing.T) {
		inactive := seedRoom(t, db, "204", 1000, 2)
		if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
			t.Fatal(err)
		}
		_, err := service.Create(newBookingRequest(customer.ID, inactive.ID, 30, 32))
		if !errors.HasCode(err, errors.ErrCodeRoomInactive) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeRoomInactive)
		}
	})
}

func TestCreateBookingConflict(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "205", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	if _, err := service.Create(newBookingRequest(customer.ID, room.ID, 30, 33)); err != nil {
		t.Fatalf("Create() lần đầu lỗi: %v", err)
	}

	_, err := service.Create(newBookingRequest(customer.ID, room.ID, 31, 34))
	if !errors.HasCode(err, errors.ErrCodeRoomUnavailable) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeRoomUnavailable)
	}

	// Chạm biên: nhận đúng ngày đơn trước trả thì vẫn đặt được
	if _, err := service.Create(newBookingRequest(customer.ID, room.ID, 33, 35)); err != nil {
		t.Errorf("đặt chạm biên lỗi: %v", err)
	}
}

func TestCreateBookingConcurrent(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "206", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	const workers = 4
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Create(newBookingRequest(customer.ID, room.ID, 40, 43))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		if !errors.HasCode(err, errors.ErrCodeRoomUnavailable) {
			t.Errorf("lỗi ngoài dự kiến: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("số đơn tạo thành công = %d, want 1", succeeded)
	}

	var count int64
	db.Model(&models.Booking{}).Where("room_id = ?", room.ID).Count(&count)
	if count != 1 {
		t.Errorf("số đơn trong DB = %d, want 1", count)
	}
}

func TestUpdateBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "207", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	booking, err := service.Create(newBookingRequest(customer.ID, room.ID, 30, 32))
	if err != nil {
		t.Fatalf("Create() lỗi: %v", err)
	}

	t.Run("đổi ngày tính lại tiền", func(t *testing.T) {
		updated, err := service.Update(&dto.UpdateBookingRequest{
			ID:           booking.ID,
			CheckOutDate: futureDate(34),
		})
		if err != nil {
			t.Fatalf("Update() lỗi: %v", err)
		}
		if updated.NumberOfNights != 4 {
			t.Errorf("số đêm = %d, want 4", updated.NumberOfNights)
		}
		if math.Abs(updated.FinalAmount-4000) > 1e-6 {
			t.Errorf("finalAmount = %v, want 4000", updated.FinalAmount)
		}
	})

	t.Run("đổi ngày vào lịch đã kín", func(t *testing.T) {
		other, err := service.Create(newBookingRequest(customer.ID, room.ID, 40, 42))
		if err != nil {
			t.Fatalf("Create() đơn thứ hai lỗi: %v", err)
		}
		_, err = service.Update(&dto.UpdateBookingRequest{
			ID:           other.ID,
			CheckInDate:  futureDate(31),
			CheckOutDate: futureDate(33),
		})
		if !errors.HasCode(err, errors.ErrCodeRoomUnavailable) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeRoomUnavailable)
		}
	})

	t.Run("đổi giảm giá giữ nguyên % thuế đã chốt", func(t *testing.T) {
		req := newBookingRequest(customer.ID, room.ID, 60, 63)
		req.Discount = 500
		req.TaxPercentage = 10
		taxed, err := service.Create(req)
		if err != nil {
			t.Fatalf("Create() lỗi: %v", err)
		}

		noDiscount := 0.0
		updated, err := service.Update(&dto.UpdateBookingRequest{ID: taxed.ID, Discount: &noDiscount})
		if err != nil {
			t.Fatalf("Update() lỗi: %v", err)
		}
		// Bỏ giảm giá: thuế 10% trên 3000 = 300, chốt 3300
		if math.Abs(updated.Tax-300) > 1e-6 {
			t.Errorf("tax = %v, want 300", updated.Tax)
		}
		if math.Abs(updated.FinalAmount-3300) > 1e-6 {
			t.Errorf("finalAmount = %v, want 3300", updated.FinalAmount)
		}
	})

	t.Run("đơn đã hủy không sửa được", func(t *testing.T) {
		cancelled, err := service.Create(newBookingRequest(customer.ID, room.ID, 50, 52))
		if err != nil {
			t.Fatalf("Create() lỗi: %v", err)
		}
		if _, err := service.Cancel(cancelled.ID); err != nil {
			t.Fatalf("Cancel() lỗi: %v", err)
		}
		guests := 1
		_, err = service.Update(&dto.UpdateBookingRequest{ID: cancelled.ID, NumberOfGuests: &guests})
		if !errors.HasCode(err, errors.ErrCodeInvalidTransition) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidTransition)
		}
	})
}

func TestUpdateBookingBelowPaidTotal(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "209", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	booking, err := service.Create(newBookingRequest(customer.ID, room.ID, 30, 33))
	if err != nil {
		t.Fatalf("Create() lỗi: %v", err)
	}
	completePayment(t, NewPaymentService(db), booking.ID, 3000)

	// Rút còn 1 đêm sẽ đẩy số tiền chốt xuống dưới tổng đã thu, phải chặn lại
	_, err = service.Update(&dto.UpdateBookingRequest{
		ID:           booking.ID,
		CheckOutDate: futureDate(31),
	})
	if !errors.HasCode(err, errors.ErrCodeOverpayment) {
		t.Errorf("err = %v, want code %v", err, errors.ErrCodeOverpayment)
	}

	var unchanged models.Booking
	if err := db.First(&unchanged, booking.ID).Error; err != nil {
		t.Fatal(err)
	}
	if unchanged.NumberOfNights != 3 || math.Abs(unchanged.FinalAmount-3000) > 1e-6 {
		t.Errorf("đơn bị sửa dù đã chặn: nights=%d final=%v", unchanged.NumberOfNights, unchanged.FinalAmount)
	}
}

func TestBookingLifecycle(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "208", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	bookingService := NewBookingService(db)
	paymentService := NewPaymentService(db)

	booking, err := bookingService.Create(newBookingRequest(customer.ID, room.ID, 30, 33))
	if err != nil {
		t.Fatalf("Create() lỗi: %v", err)
	}

	// Nhận phòng
	booking, err = bookingService.ChangeStatus(booking.ID, models.BookingStatusCheckedIn)
	if err != nil {
		t.Fatalf("nhận phòng lỗi: %v", err)
	}
	if booking.CheckedInAt == nil {
		t.Error("CheckedInAt phải được gán khi nhận phòng")
	}
	var roomAfter models.Room
	db.First(&roomAfter, room.ID)
	if roomAfter.Status != models.RoomStatusOccupied {
		t.Errorf("cờ phòng = %s, want %s", roomAfter.Status, models.RoomStatusOccupied)
	}

	// Trả phòng khi còn công nợ phải bị chặn
	_, err = bookingService.ChangeStatus(booking.ID, models.BookingStatusCheckedOut)
	if !errors.HasCode(err, errors.ErrCodeUnpaidBalance) {
		t.Fatalf("err = %v, want code %v", err, errors.ErrCodeUnpaidBalance)
	}

	// Thanh toán đủ rồi trả phòng
	payment, err := paymentService.Record(&dto.CreatePaymentRequest{
		BookingID:     booking.ID,
		Amount:        booking.FinalAmount,
		PaymentMethod: models.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("Record() lỗi: %v", err)
	}
	if _, err := paymentService.UpdateStatus(payment.ID, models.PaymentStatusCompleted, nil); err != nil {
		t.Fatalf("hoàn tất thanh toán lỗi: %v", err)
	}

	booking, err = bookingService.ChangeStatus(booking.ID, models.BookingStatusCheckedOut)
	if err != nil {
		t.Fatalf("trả phòng lỗi: %v", err)
	}
	if booking.CheckedOutAt == nil {
		t.Error("CheckedOutAt phải được gán khi trả phòng")
	}
	db.First(&roomAfter, room.ID)
	if roomAfter.Status != models.RoomStatusAvailable {
		t.Errorf("cờ phòng = %s, want %s", roomAfter.Status, models.RoomStatusAvailable)
	}
}

func TestCancelBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "209", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	t.Run("hủy đơn confirmed", func(t *testing.T) {
		booking, err := service.Create(newBookingRequest(customer.ID, room.ID, 30, 32))
		if err != nil {
			t.Fatalf("Create() lỗi: %v", err)
		}
		cancelled, err := service.Cancel(booking.ID)
		if err != nil {
			t.Fatalf("Cancel() lỗi: %v", err)
		}
		if cancelled.Status != models.BookingStatusCancelled {
			t.Errorf("status = %s, want %s", cancelled.Status, models.BookingStatusCancelled)
		}

		// Phòng trống lại cho khách khác cùng khoảng ngày
		if _, err := service.Create(newBookingRequest(customer.ID, room.ID, 30, 32)); err != nil {
			t.Errorf("đặt lại sau khi hủy lỗi: %v", err)
		}
	})

	t.Run("không hủy được đơn đang ở", func(t *testing.T) {
		booking, err := service.Create(newBookingRequest(customer.ID, room.ID, 40, 42))
		if err != nil {
			t.Fatalf("Create() lỗi: %v", err)
		}
		if _, err := service.ChangeStatus(booking.ID, models.BookingStatusCheckedIn); err != nil {
			t.Fatalf("nhận phòng lỗi: %v", err)
		}
		_, err = service.Cancel(booking.ID)
		if !errors.HasCode(err, errors.ErrCodeInvalidTransition) {
			t.Errorf("err = %v, want code %v", err, errors.ErrCodeInvalidTransition)
		}
	})
}

func TestTodayCheckInsAndCheckOuts(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "210", 1000, 2)
	otherRoom := seedRoom(t, db, "211", 1000, 2)
	customer := seedCustomer(t, db, "lan.tran@example.com")
	service := NewBookingService(db)

	today := todayStart()

	// Đơn nhận hôm nay, đơn trả hôm nay và một đơn không liên quan
	seedBooking(t, db, room.ID, customer.ID, today, today.AddDate(0, 0, 2), models.BookingStatusConfirmed)
	seedBooking(t, db, otherRoom.ID, customer.ID, today.AddDate(0, 0, -2), today, models.BookingStatusCheckedIn)
	seedBooking(t, db, room.ID, customer.ID, today.AddDate(0, 0, 10), today.AddDate(0, 0, 12), models.BookingStatusConfirmed)

	checkIns, err := service.TodayCheckIns()
	if err != nil {
		t.Fatalf("TodayCheckIns() lỗi: %v", err)
	}
	if len(checkIns) != 1 || !checkIns[0].CheckInDate.Equal(today) {
		t.Errorf("danh sách nhận phòng hôm nay = %d đơn, want 1", len(checkIns))
	}

	checkOuts, err := service.TodayCheckOuts()
	if err != nil {
		t.Fatalf("TodayCheckOuts() lỗi: %v", err)
	}
	if len(checkOuts) != 1 || checkOuts[0].RoomID != otherRoom.ID {
		t.Errorf("danh sách trả phòng hôm nay = %d đơn, want 1", len(checkOuts))
	}
}
