package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/sunnyBaby1024/blog/utils"
)

// SessionCookieName is the cookie the admin session token travels in.
const SessionCookieName = "admin_session"

func extractSessionClaims(c *gin.Context) (jwt.MapClaims, bool) {
	tokenString, err := c.Cookie(SessionCookieName)
	if err != nil || tokenString == "" {
		// API clients may send the token as a bearer header instead
		authHeader := strings.Trim(c.GetHeader("Authorization"), "\"' ")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			tokenString = strings.Trim(parts[1], "\"' ")
		}
	}

	if tokenString == "" {
		return nil, false
	}

	claims, err := utils.DecodeSessionToken(tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// AdminAuth gates every admin operation. A missing, invalid or expired
// session sends the caller to the login entry point without running the
// guarded handler.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractSessionClaims(c)
		if !ok {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set("admin_id", claims["admin_id"])
		c.Set("admin_username", claims["username"])
		c.Next()
	}
}

// HasAdminSession reports whether the request carries a valid admin session
// without gating it. Public handlers use it to let admins preview drafts.
func HasAdminSession(c *gin.Context) bool {
	_, ok := extractSessionClaims(c)
	return ok
}
