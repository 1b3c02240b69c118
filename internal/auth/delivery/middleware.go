package delivery

import (
	"strings"

	authdomain "konasal-backend/internal/auth/domain"
	"konasal-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthMiddleware guards protected routes. It accepts the session token from
// the Authorization header or, failing that, the access_token cookie.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := presentedToken(c)
		user, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.JSON(StatusFor(err), gin.H{"error": message(err)})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// presentedToken extracts the session token from the request: Bearer header
// first, cookie as fallback for browser clients. A non-Bearer Authorization
// header does not block the cookie path.
func presentedToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	cookie, err := c.Cookie(accessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
