package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	coursedomain "konasal-backend/internal/course/domain"
	courseusecase "konasal-backend/internal/course/usecase"
	paymentdomain "konasal-backend/internal/payment/domain"
	"konasal-backend/internal/payment/repository"
	"konasal-backend/pkg/paypal"
)

// OrderGateway is the slice of the PayPal client the payment flow needs.
type OrderGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, courseID, userID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

type CreateOrderResult struct {
	OrderID     string `json:"order_id"`
	ApprovalURL string `json:"approval_url"`
	Status      string `json:"status"`
}

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, userID, courseID, currency string) (*CreateOrderResult, error)
	CaptureOrder(ctx context.Context, userID, orderID string) (*paymentdomain.Payment, error)
	ListPayments(ctx context.Context, userID string) ([]paymentdomain.Payment, error)
}

type paymentUsecase struct {
	paymentRepo repository.PaymentRepository
	courses     courseusecase.CourseUsecase
	gateway     OrderGateway
}

func NewPaymentUsecase(paymentRepo repository.PaymentRepository, courses courseusecase.CourseUsecase, gateway OrderGateway) PaymentUsecase {
	return &paymentUsecase{
		paymentRepo: paymentRepo,
		courses:     courses,
		gateway:     gateway,
	}
}

func (u *paymentUsecase) CreateOrder(ctx context.Context, userID, courseID, currency string) (*CreateOrderResult, error) {
	course, err := u.courses.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = "USD"
	}

	order, err := u.gateway.CreateOrder(ctx, course.Price, currency, course.ID, userID)
	if err != nil {
		log.Printf("[ERROR] paypal create order failed for course %s: %v", courseID, err)
		return nil, fmt.Errorf("%w: %v", paymentdomain.ErrGateway, err)
	}

	payment := &paymentdomain.Payment{
		UserID:        userID,
		CourseID:      course.ID,
		Amount:        course.Price,
		Currency:      currency,
		PayPalOrderID: order.ID,
		Status:        paymentdomain.StatusPending,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		OrderID:     order.ID,
		ApprovalURL: order.ApprovalURL(),
		Status:      order.Status,
	}, nil
}

func (u *paymentUsecase) CaptureOrder(ctx context.Context, userID, orderID string) (*paymentdomain.Payment, error) {
	payment, err := u.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, paymentdomain.ErrPaymentNotFound
	}

	order, err := u.gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		payment.Status = paymentdomain.StatusFailed
		if updateErr := u.paymentRepo.Update(ctx, payment); updateErr != nil {
			log.Printf("[ERROR] marking payment %s failed: %v", payment.ID, updateErr)
		}
		return nil, fmt.Errorf("%w: %v", paymentdomain.ErrGateway, err)
	}

	payment.Status = paymentdomain.StatusCompleted
	payment.PayPalPaymentID = order.CaptureID()
	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	// A paid course is an enrolled course; an earlier manual enrollment is fine.
	if _, err := u.courses.Enroll(ctx, userID, payment.CourseID); err != nil && !errors.Is(err, coursedomain.ErrAlreadyEnrolled) {
		log.Printf("[ERROR] enrolling user %s after payment %s: %v", userID, payment.ID, err)
	}

	return payment, nil
}

func (u *paymentUsecase) ListPayments(ctx context.Context, userID string) ([]paymentdomain.Payment, error) {
	return u.paymentRepo.ListByUser(ctx, userID)
}
