package domain

import (
	"encoding/json"
	"errors"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrNotEnrolled     = errors.New("not enrolled in this course")
)

type Course struct {
	ID               string          `json:"id" gorm:"primaryKey"`
	Name             string          `json:"name" gorm:"not null;index"`
	Category         string          `json:"category" gorm:"not null"`
	Duration         string          `json:"duration,omitempty"`
	Summary          string          `json:"summary" gorm:"not null"`
	Description      string          `json:"description,omitempty"`
	Image            string          `json:"image,omitempty"`
	Price            float64         `json:"price" gorm:"not null;default:0"`
	CourseObjectives json.RawMessage `json:"courseobjectives,omitempty" gorm:"type:jsonb"`
	Curriculum       json.RawMessage `json:"curriculum,omitempty" gorm:"type:jsonb"`
	TargetAudience   json.RawMessage `json:"targetaudience,omitempty" gorm:"type:jsonb"`
	CourseBenefits   json.RawMessage `json:"coursebenefits,omitempty" gorm:"type:jsonb"`
	CourseCompletion json.RawMessage `json:"coursecompletion,omitempty" gorm:"type:jsonb"`
}

func (Course) TableName() string {
	return "courses"
}
