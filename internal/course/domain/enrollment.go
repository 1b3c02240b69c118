package domain

import "time"

// Enrollment links a user to a course. The composite primary key is the
// store-level guard against double enrollment.
type Enrollment struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"primaryKey"`
	Progress  float64   `json:"progress" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// EnrolledCourse is a course joined with the caller's progress.
type EnrolledCourse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Summary  string  `json:"summary"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
	Progress float64 `json:"progress"`
}
