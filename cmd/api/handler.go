package api

import (
	authUsecase "konasal-backend/internal/auth/usecase"
	courseUsecase "konasal-backend/internal/course/usecase"
	paymentUsecase "konasal-backend/internal/payment/usecase"
	"konasal-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	courseUsecase  courseUsecase.CourseUsecase
	paymentUsecase paymentUsecase.PaymentUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, courseUc courseUsecase.CourseUsecase, paymentUc paymentUsecase.PaymentUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		courseUsecase:  courseUc,
		paymentUsecase: paymentUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.courseUsecase, h.paymentUsecase)

	return r.Run(addr)
}
