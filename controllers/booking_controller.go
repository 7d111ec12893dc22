package controllers

import (
	"log"
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

func toBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:               booking.ID,
		BookingReference: booking.BookingReference,
		Customer: dto.BookingCustomerResponse{
			ID:    booking.Customer.ID,
			Name:  booking.Customer.FullName(),
			Email: booking.Customer.Email,
			Phone: booking.Customer.Phone,
		},
		Room: dto.BookingRoomResponse{
			ID:            booking.Room.ID,
			RoomNumber:    booking.Room.RoomNumber,
			RoomType:      booking.Room.RoomType,
			PricePerNight: booking.Room.PricePerNight,
		},
		CheckInDate:     booking.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:    booking.CheckOutDate.Format(validator.DateLayout),
		NumberOfGuests:  booking.NumberOfGuests,
		NumberOfNights:  booking.NumberOfNights,
		RoomPrice:       booking.RoomPrice,
		TotalAmount:     booking.TotalAmount,
		Discount:        booking.Discount,
		Tax:             booking.Tax,
		FinalAmount:     booking.FinalAmount,
		Status:          booking.Status,
		SpecialRequests: booking.SpecialRequests,
		CheckedInAt:     booking.CheckedInAt,
		CheckedOutAt:    booking.CheckedOutAt,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// GetAllBookings lấy danh sách đặt phòng, lọc theo trạng thái/khách/phòng/khoảng ngày
func GetAllBookings(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	customerIDStr := c.Query("customerId")
	roomIDStr := c.Query("roomId")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")
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

	unfiltered := statusFilter == "" && customerIDStr == "" && roomIDStr == "" &&
		fromDateStr == "" && toDateStr == "" && page == 0
	if unfiltered && config.RedisClient != nil {
		var cached []dto.BookingResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, services.CacheKeyBookings, &cached); err == nil && len(cached) > 0 {
			total := len(cached)
			if limit < total {
				cached = cached[:limit]
			}
			response.SuccessWithPagination(c, cached, page, limit, total)
			return
		}
	}

	tx := config.DB.Model(&models.Booking{})
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if customerIDStr != "" {
		if customerID, err := strconv.Atoi(customerIDStr); err == nil {
			tx = tx.Where("customer_id = ?", customerID)
		}
	}
	if roomIDStr != "" {
		if roomID, err := strconv.Atoi(roomIDStr); err == nil {
			tx = tx.Where("room_id = ?", roomID)
		}
	}
	if fromDateStr != "" {
		fromDate, err := validator.ParseDate(fromDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		tx = tx.Where("check_in_date >= ?", fromDate)
	}
	if toDateStr != "" {
		toDate, err := validator.ParseDate(toDateStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		tx = tx.Where("check_in_date <= ?", toDate)
	}

	var totalBookings int64
	if err := tx.Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Preload("Customer").Preload("Room").
		Order("created_at desc").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	if unfiltered && config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, services.CacheKeyBookings, bookingResponses, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu dữ liệu vào Redis: %v", err)
		}
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

// CreateBooking tạo đặt phòng mới
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	booking, err := services.NewBookingService(config.DB).Create(&request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateBookingCache()
	response.Created(c, toBookingResponse(*booking))
}

// GetBookingDetail lấy chi tiết đặt phòng theo ID
func GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID đặt phòng không hợp lệ")
		return
	}

	booking, err := services.NewBookingService(config.DB).GetByID(uint(bookingID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

// GetBookingByReference tra cứu đặt phòng theo mã tham chiếu
func GetBookingByReference(c *gin.Context) {
	reference := c.Param("reference")

	var booking models.Booking
	if err := config.DB.Preload("Customer").Preload("Room").
		Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
		response.NotFoundMessage(c, "Không tìm thấy đặt phòng "+reference)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// UpdateBooking sửa đặt phòng
func UpdateBooking(c *gin.Context) {
	var request dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	booking, err := services.NewBookingService(config.DB).Update(&request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateBookingCache()
	response.Success(c, toBookingResponse(*booking))
}

// ChangeBookingStatus chuyển trạng thái đặt phòng
func ChangeBookingStatus(c *gin.Context) {
	var request dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	booking, err := services.NewBookingService(config.DB).ChangeStatus(request.ID, request.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateBookingCache()
	invalidateRoomCache()
	response.Success(c, toBookingResponse(*booking))
}

// CancelBooking hủy đặt phòng
func CancelBooking(c *gin.Context) {
	var request dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	booking, err := services.NewBookingService(config.DB).Cancel(request.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	invalidateBookingCache()
	invalidateRoomCache()
	response.Success(c, toBookingResponse(*booking))
}

// GetBookingHistory lấy lịch sử đặt phòng của một khách hàng, mới nhất trước
func GetBookingHistory(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Query("customerId"))
	if err != nil || customerID <= 0 {
		response.BadRequest(c, "customerId không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		response.NotFoundMessage(c, "Không tìm thấy khách hàng")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Customer").Preload("Room").
		Where("customer_id = ?", customerID).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// CheckAvailability kiểm tra phòng có trống trong khoảng ngày không
func CheckAvailability(c *gin.Context) {
	var request dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	checkIn, err := validator.ParseDate(request.CheckInDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	checkOut, err := validator.ParseDate(request.CheckOutDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if err := validator.ValidateBookingDates(checkIn, checkOut); err != nil {
		handleServiceError(c, err)
		return
	}

	availabilityService := services.NewAvailabilityService(config.DB)
	available, conflicting, err := availabilityService.RoomAvailable(request.RoomID, checkIn, checkOut, 0)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	result := dto.AvailabilityResponse{Available: available}
	if available {
		result.Message = "Phòng trống trong khoảng thời gian này"
	} else {
		result.Message = "Phòng đã có khách trong khoảng thời gian này"
		result.ConflictingBookings = services.ConflictMessages(conflicting)
	}

	response.Success(c, result)
}

// GetTodayCheckIns lấy danh sách đơn nhận phòng hôm nay
func GetTodayCheckIns(c *gin.Context) {
	bookings, err := services.NewBookingService(config.DB).TodayCheckIns()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

// GetTodayCheckOuts lấy danh sách đơn trả phòng hôm nay
func GetTodayCheckOuts(c *gin.Context) {
	bookings, err := services.NewBookingService(config.DB).TodayCheckOuts()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.SuccessWithTotal(c, bookingResponses, len(bookingResponses))
}

func invalidateBookingCache() {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, services.CacheKeyBookings)
}
