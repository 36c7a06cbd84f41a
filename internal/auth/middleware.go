package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerScheme = "Bearer"

const contextKeyIdentity = "auth_identity"

// IdentityFromContext returns the identity set by RequireAuth.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// RequireAuth returns a middleware that checks for a valid bearer token
// and sets the resolved identity in context. Missing header, wrong scheme
// and every verification failure all get the same 401 body; the handler
// behind the gate never runs.
func RequireAuth(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != bearerScheme {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		identity, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(contextKeyIdentity, identity)
		c.Next()
	}
}
