package delivery

import (
	"errors"
	"net/http"

	authdelivery "konasal-backend/internal/auth/delivery"
	coursedomain "konasal-backend/internal/course/domain"
	paymentdomain "konasal-backend/internal/payment/domain"
	"konasal-backend/internal/payment/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
	}
}

type createOrderRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	Currency string `json:"currency"`
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.paymentUsecase.CreateOrder(c.Request.Context(), user.ID, req.CourseID, req.Currency)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *PaymentHandler) CaptureOrder(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	payment, err := h.paymentUsecase.CaptureOrder(c.Request.Context(), user.ID, c.Param("orderID"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	payments, err := h.paymentUsecase.ListPayments(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, paymentdomain.ErrPaymentNotFound), errors.Is(err, coursedomain.ErrCourseNotFound):
		return http.StatusNotFound
	case errors.Is(err, paymentdomain.ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch statusFor(err) {
	case http.StatusInternalServerError:
		return "internal server error"
	case http.StatusBadGateway:
		return "payment gateway error"
	default:
		return err.Error()
	}
}
