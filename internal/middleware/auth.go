package middleware

import (
	"context"
	"strings"

	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticator resolves a session token into an identity
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Identity, error)
}

// bearerToken reads the token from the Authorization header, or from ?token= for
// websocket upgrades where browsers cannot set headers
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return strings.TrimSpace(c.Query("token"))
}

// RequireAuth rejects requests without a valid session
func RequireAuth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.AppErrorResponse(c, errcode.New(errcode.AuthInvalidToken))
			c.Abort()
			return
		}

		identity, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.AppErrorResponse(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin allows only admin identities; it must run after RequireAuth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAdmin() {
			utils.AppErrorResponse(c, errcode.New(errcode.AuthForbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity stored by RequireAuth
func GetIdentity(c *gin.Context) (*service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*service.Identity)
	return identity, ok && identity != nil
}
