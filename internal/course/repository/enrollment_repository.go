package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	coursedomain "konasal-backend/internal/course/domain"

	"gorm.io/gorm"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *coursedomain.Enrollment) error {
	enrollment.CreatedAt = time.Now()
	enrollment.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Create(enrollment).Error
	if err != nil && isDuplicateKey(err) {
		return coursedomain.ErrAlreadyEnrolled
	}
	return err
}

func (r *enrollmentRepository) Find(ctx context.Context, userID, courseID string) (*coursedomain.Enrollment, error) {
	var enrollment coursedomain.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) ListByUser(ctx context.Context, userID string) ([]coursedomain.EnrolledCourse, error) {
	var enrolled []coursedomain.EnrolledCourse
	err := r.db.WithContext(ctx).
		Table("courses").
		Select("courses.id, courses.name, courses.summary, courses.category, courses.image, enrollments.progress").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Scan(&enrolled).Error
	if err != nil {
		return nil, err
	}
	return enrolled, nil
}

func (r *enrollmentRepository) UpdateProgress(ctx context.Context, userID, courseID string, progress float64) error {
	result := r.db.WithContext(ctx).Model(&coursedomain.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{"progress": progress, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return coursedomain.ErrNotEnrolled
	}
	return nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
