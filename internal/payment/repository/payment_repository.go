package repository

import (
	"context"
	"errors"
	"time"

	paymentdomain "konasal-backend/internal/payment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *paymentdomain.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*paymentdomain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]paymentdomain.Payment, error)
	Update(ctx context.Context, payment *paymentdomain.Payment) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *paymentdomain.Payment) error {
	payment.ID = uuid.New().String()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID string) (*paymentdomain.Payment, error) {
	var payment paymentdomain.Payment
	err := r.db.WithContext(ctx).Where("pay_pal_order_id = ?", orderID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]paymentdomain.Payment, error) {
	var payments []paymentdomain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *paymentdomain.Payment) error {
	payment.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(payment).Error
}
