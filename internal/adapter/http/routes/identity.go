package routes

import (
	"net/http"
	"strings"

	"garage_manager/internal/adapter/http/handlers"
	"garage_manager/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID is set by the fronting auth layer after token validation.
const HeaderUserID = "X-User-ID"

// IdentityMiddleware extracts the authenticated user id from the request and
// stores it on the context for the handlers. Requests without an identity are
// rejected; every resource in the API is scoped to its owner.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if uid == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(handlers.UserIDKey, uid)
		c.Next()
	}
}
