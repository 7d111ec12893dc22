package validator

import (
	"regexp"
	"time"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
)

// DateLayout là định dạng ngày trên wire
const DateLayout = "02/01/2006"

// ParseDate parse chuỗi ngày dd/MM/yyyy
func ParseDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ: "+dateStr, err)
	}
	return parsedDate, nil
}

// ValidateBookingDates kiểm tra cặp ngày nhận/trả phòng
func ValidateBookingDates(checkIn, checkOut time.Time) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// ValidateCreateBooking kiểm tra request tạo đặt phòng, trả về cặp ngày đã parse
func ValidateCreateBooking(req *dto.CreateBookingRequest) (checkIn, checkOut time.Time, err error) {
	if req.CustomerID == 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "ID khách hàng không được để trống", nil)
	}
	if req.RoomID == 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if req.NumberOfGuests <= 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeValidation, "Số khách phải lớn hơn 0", nil)
	}
	if req.Discount < 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidAmount, "Giảm giá không được âm", nil)
	}
	if req.TaxPercentage < 0 {
		return checkIn, checkOut, errors.NewAppError(errors.ErrCodeInvalidAmount, "Thuế không được âm", nil)
	}

	checkIn, err = ParseDate(req.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}
	checkOut, err = ParseDate(req.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, err
	}
	if err := ValidateBookingDates(checkIn, checkOut); err != nil {
		return checkIn, checkOut, err
	}

	return checkIn, checkOut, nil
}

// ValidateCreatePayment kiểm tra request ghi nhận thanh toán
func ValidateCreatePayment(req *dto.CreatePaymentRequest) error {
	if req.BookingID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID đặt phòng không được để trống", nil)
	}
	if req.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return errors.NewAppError(errors.ErrCodeValidation, "Phương thức thanh toán không hợp lệ: "+req.PaymentMethod, nil)
	}
	return nil
}

// ValidateBookingStatus kiểm tra trạng thái đặt phòng hợp lệ
func ValidateBookingStatus(status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCheckedIn,
		models.BookingStatusCheckedOut, models.BookingStatusCancelled:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái đặt phòng không hợp lệ: "+status, nil)
}

// ValidatePaymentStatus kiểm tra trạng thái thanh toán hợp lệ
func ValidatePaymentStatus(status string) error {
	switch status {
	case models.PaymentStatusPending, models.PaymentStatusCompleted,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái thanh toán không hợp lệ: "+status, nil)
}

// ValidateRoom kiểm tra thông tin phòng
func ValidateRoom(req *dto.RoomRequest) error {
	if req.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}
	if req.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}
	if req.PricePerNight <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng phải lớn hơn 0", nil)
	}
	if req.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateCustomer kiểm tra thông tin khách hàng
func ValidateCustomer(req *dto.CustomerRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách hàng không được để trống", nil)
	}
	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	if req.Phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}
	if !isValidPhone(req.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{10,12}$`)
	return phoneRegex.MatchString(phone)
}
