package repository

import (
	"context"

	coursedomain "konasal-backend/internal/course/domain"
)

type CourseRepository interface {
	List(ctx context.Context, category, search string) ([]coursedomain.Course, error)
	FindByID(ctx context.Context, id string) (*coursedomain.Course, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *coursedomain.Enrollment) error
	Find(ctx context.Context, userID, courseID string) (*coursedomain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]coursedomain.EnrolledCourse, error)
	UpdateProgress(ctx context.Context, userID, courseID string, progress float64) error
}
