package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

// RequireRoles is a gin middleware that rejects the request unless it carries
// a valid bearer token whose role claim is in the allowed set. The verified
// identity is stored in the gin context for handlers.
func RequireRoles(issuer *TokenIssuer, roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		identity, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if _, ok := allowed[identity.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient role"})
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity stores the verified identity in the gin context. RequireRoles
// calls it; handler tests use it to inject a caller directly.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// IdentityFromContext returns the identity stored by RequireRoles.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}
