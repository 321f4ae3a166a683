package middleware

import (
	"net/http"
	"strings"

	"midas_family_server/pkg/errorx"
	"midas_family_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserIdKey is the gin context key carrying the caller's user id
// resolved from the bearer token.
const ContextUserIdKey = "user_id"

// JWTAuth decodes the bearer token and stores the caller's user id in
// the context. The token's subject claim is the user id issued by the
// external user service.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "authorization header missing",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "malformed authorization header, expected Bearer token",
			})
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil || claims.UserId == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "token invalid or expired",
			})
			return
		}

		c.Set(ContextUserIdKey, claims.UserId)
		c.Next()
	}
}

// CallerUserId reads the user id stored by JWTAuth. The boolean is false
// when the middleware did not run for this request.
func CallerUserId(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(ContextUserIdKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
