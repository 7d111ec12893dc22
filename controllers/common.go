package controllers

import (
	"frontdesk/errors"
	"frontdesk/response"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError map AppError sang HTTP response tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		utils.LogError("Lỗi không xác định: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeDBNotFound:
		response.NotFoundMessage(c, appErr.Message)
	case errors.ErrCodeRoomUnavailable, errors.ErrCodeInvalidTransition, errors.ErrCodeOverpayment,
		errors.ErrCodeUnpaidBalance, errors.ErrCodeRoomHasBookings, errors.ErrCodeDBDuplicate,
		errors.ErrCodeBookingCancelled:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidAmount, errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidEmail,
		errors.ErrCodeInvalidPhone, errors.ErrCodeRoomInactive, errors.ErrCodeCapacityExceeded,
		errors.ErrCodeNoCompletedPayment:
		response.BadRequest(c, appErr.Message)
	default:
		utils.LogError("Lỗi service: %v", appErr)
		response.ServerError(c)
	}
}
