package controllers

import (
	"strconv"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/models"
	"frontdesk/response"
	"frontdesk/validator"

	"github.com/gin-gonic/gin"
)

func toCustomerResponse(customer models.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		City:      customer.City,
		Country:   customer.Country,
		IDType:    customer.IDType,
		IDNumber:  customer.IDNumber,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// GetAllCustomers lấy danh sách khách hàng, tìm theo tên/email/số điện thoại
func GetAllCustomers(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	search := c.Query("search")
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

	tx := config.DB.Model(&models.Customer{})
	if search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var totalCustomers int64
	if err := tx.Count(&totalCustomers).Error; err != nil {
		response.ServerError(c)
		return
	}

	var customers []models.Customer
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	customerResponses := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		customerResponses = append(customerResponses, toCustomerResponse(customer))
	}

	response.SuccessWithPagination(c, customerResponses, page, limit, int(totalCustomers))
}

// CreateCustomer tạo hồ sơ khách hàng mới, email là duy nhất
func CreateCustomer(c *gin.Context) {
	var request dto.CustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}

	if err := validator.ValidateCustomer(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	var existingCustomer models.Customer
	if err := config.DB.Where("email = ?", request.Email).First(&existingCustomer).Error; err == nil {
		response.Conflict(c, "Email đã được sử dụng")
		return
	}

	customer := models.Customer{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		Address:   request.Address,
		City:      request.City,
		State:     request.State,
		Country:   request.Country,
		ZipCode:   request.ZipCode,
		IDType:    request.IDType,
		IDNumber:  request.IDNumber,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, toCustomerResponse(customer))
}

// GetCustomerDetail lấy chi tiết khách hàng kèm lịch sử đặt phòng
func GetCustomerDetail(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID khách hàng không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Room").Where("customer_id = ?", customer.ID).
		Order("created_at desc").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		booking.Customer = customer
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.Success(c, gin.H{
		"customer": toCustomerResponse(customer),
		"bookings": bookingResponses,
	})
}

// UpdateCustomer cập nhật hồ sơ khách hàng
func UpdateCustomer(c *gin.Context) {
	var request dto.CustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Lỗi khi ràng buộc dữ liệu")
		return
	}
	if request.ID == 0 {
		response.BadRequest(c, "ID khách hàng không được để trống")
		return
	}

	if err := validator.ValidateCustomer(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Email != customer.Email {
		var existingCustomer models.Customer
		if err := config.DB.Where("email = ? AND id <> ?", request.Email, customer.ID).First(&existingCustomer).Error; err == nil {
			response.Conflict(c, "Email đã được sử dụng")
			return
		}
	}

	customer.FirstName = request.FirstName
	customer.LastName = request.LastName
	customer.Email = request.Email
	customer.Phone = request.Phone
	customer.Address = request.Address
	customer.City = request.City
	customer.State = request.State
	customer.Country = request.Country
	customer.ZipCode = request.ZipCode
	customer.IDType = request.IDType
	customer.IDNumber = request.IDNumber

	if err := config.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCustomerResponse(customer))
}

// DeleteCustomer xóa khách hàng, chặn khi còn đơn đặt chưa kết thúc
func DeleteCustomer(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID khách hàng không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, customerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var activeBookings int64
	err = config.DB.Model(&models.Booking{}).
		Where("customer_id = ?", customer.ID).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&activeBookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if activeBookings > 0 {
		response.Conflict(c, "Khách hàng còn đơn đặt chưa kết thúc, không thể xóa")
		return
	}

	if err := config.DB.Delete(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": customer.ID})
}
