package middleware

import (
	"net/http"
	"strings"

	"obsydia_retail/internal/usecase"
	"obsydia_retail/pkg"

	"github.com/gin-gonic/gin"
)

// AdminSubjectKey holds the authenticated admin username in the gin context.
const AdminSubjectKey = "admin_subject"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
)

// AdminAuth rejects requests without a valid "Authorization: Bearer <jwt>".
func AdminAuth(auth usecase.IAdminAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		subject, err := auth.Verify(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(AdminSubjectKey, subject)
		c.Next()
	}
}
