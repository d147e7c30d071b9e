package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fashionstore/internal/service/auth"
	"fashionstore/internal/session"
)

const (
	claimsCtxKey    = "authClaims"
	cartStoreCtxKey = "cartStore"
	sessionCookie   = "cart_session"
)

// requestLogger logs every request with a short request id and timing.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()[:8]
		c.Header("X-Request-ID", requestID)

		c.Next()

		event := log.Info()
		switch {
		case c.Writer.Status() >= 500:
			event = log.Error()
		case c.Writer.Status() >= 400:
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("http request")
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// authenticate parses the bearer token and stores the claims on the context.
// On failure it writes a 401 and aborts. It never advances the chain, so
// callers decide when the remaining handlers run.
func authenticate(c *gin.Context, svc *auth.Service) *auth.Claims {
	token := bearerToken(c)
	if token == "" {
		errorJSON(c, http.StatusUnauthorized, "missing token")
		c.Abort()
		return nil
	}
	claims, err := svc.ParseToken(token)
	if err != nil {
		errorJSON(c, http.StatusUnauthorized, "invalid token")
		c.Abort()
		return nil
	}
	c.Set(claimsCtxKey, claims)
	return claims
}

// authRequired rejects requests without a valid access token.
func authRequired(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticate(c, svc) == nil {
			return
		}
		c.Next()
	}
}

// adminRequired additionally insists on the admin role before the protected
// handler runs.
func adminRequired(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := authenticate(c, svc)
		if claims == nil {
			return
		}
		if !claims.IsAdmin {
			errorJSON(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// cartSession resolves the caller's cart store from the session cookie,
// minting a new session when none is present.
func cartSession(carts *session.Registry, ttl time.Duration) gin.HandlerFunc {
	maxAge := int(ttl.Seconds())
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			token = carts.NewToken()
		}
		c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
		c.Set(cartStoreCtxKey, carts.Store(c.Request.Context(), token))
		c.Next()
	}
}
