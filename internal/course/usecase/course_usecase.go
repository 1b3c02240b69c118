package usecase

import (
	"context"

	coursedomain "konasal-backend/internal/course/domain"
	"konasal-backend/internal/course/repository"
)

type CourseUsecase interface {
	ListCourses(ctx context.Context, category, search string) ([]coursedomain.Course, error)
	GetCourse(ctx context.Context, id string) (*coursedomain.Course, error)
	Enroll(ctx context.Context, userID, courseID string) (*coursedomain.Course, error)
	ListEnrollments(ctx context.Context, userID string) ([]coursedomain.EnrolledCourse, error)
	UpdateProgress(ctx context.Context, userID, courseID string, progress float64) error
}

type courseUsecase struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewCourseUsecase(courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository) CourseUsecase {
	return &courseUsecase{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (u *courseUsecase) ListCourses(ctx context.Context, category, search string) ([]coursedomain.Course, error) {
	return u.courseRepo.List(ctx, category, search)
}

func (u *courseUsecase) GetCourse(ctx context.Context, id string) (*coursedomain.Course, error) {
	course, err := u.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, coursedomain.ErrCourseNotFound
	}
	return course, nil
}

func (u *courseUsecase) Enroll(ctx context.Context, userID, courseID string) (*coursedomain.Course, error) {
	course, err := u.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	// The composite primary key catches concurrent double-enrollment; this
	// pre-check just gives the common case a clean error.
	existing, err := u.enrollmentRepo.Find(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, coursedomain.ErrAlreadyEnrolled
	}

	enrollment := &coursedomain.Enrollment{UserID: userID, CourseID: courseID}
	if err := u.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return course, nil
}

func (u *courseUsecase) ListEnrollments(ctx context.Context, userID string) ([]coursedomain.EnrolledCourse, error) {
	return u.enrollmentRepo.ListByUser(ctx, userID)
}

func (u *courseUsecase) UpdateProgress(ctx context.Context, userID, courseID string, progress float64) error {
	return u.enrollmentRepo.UpdateProgress(ctx, userID, courseID, progress)
}
