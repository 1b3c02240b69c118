package delivery

import (
	"errors"
	"fmt"
	"net/http"

	authdelivery "konasal-backend/internal/auth/delivery"
	coursedomain "konasal-backend/internal/course/domain"
	"konasal-backend/internal/course/usecase"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUsecase usecase.CourseUsecase
}

func NewCourseHandler(courseUsecase usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{
		courseUsecase: courseUsecase,
	}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseUsecase.ListCourses(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUsecase.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Enroll(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	course, err := h.courseUsecase.Enroll(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Enrolled in course %s successfully", course.Name)})
}

func (h *CourseHandler) ListEnrollments(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	enrolled, err := h.courseUsecase.ListEnrollments(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, enrolled)
}

type updateProgressRequest struct {
	Progress float64 `json:"progress" binding:"min=0,max=100"`
}

func (h *CourseHandler) UpdateProgress(c *gin.Context) {
	user := authdelivery.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.courseUsecase.UpdateProgress(c.Request.Context(), user.ID, c.Param("id"), req.Progress); err != nil {
		c.JSON(statusFor(err), gin.H{"error": messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress updated"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, coursedomain.ErrCourseNotFound), errors.Is(err, coursedomain.ErrNotEnrolled):
		return http.StatusNotFound
	case errors.Is(err, coursedomain.ErrAlreadyEnrolled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
