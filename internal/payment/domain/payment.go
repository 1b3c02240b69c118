package domain

import (
	"errors"
	"time"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrGateway         = errors.New("payment gateway error")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

type Payment struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"user_id" gorm:"not null;index"`
	CourseID        string    `json:"course_id" gorm:"not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Currency        string    `json:"currency" gorm:"size:3;default:USD"`
	PayPalOrderID   string    `json:"paypal_order_id" gorm:"uniqueIndex;size:255"`
	PayPalPaymentID string    `json:"paypal_payment_id,omitempty" gorm:"size:255"`
	Status          Status    `json:"status" gorm:"size:50;default:pending"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
