package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/session"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/utils"
	"go.uber.org/zap"
)

const (
	SessionCookie = "ff_session"
	SessionHeader = "X-Session-Token"
	sessionKey    = "session"
)

type SessionTokens interface {
	Issue(sessionID string) (string, error)
	Verify(token string) (string, error)
}

type SessionRegistry interface {
	NewID() string
	Get(ctx context.Context, id string) *session.Session
}

type SessionOptions struct {
	TTL          time.Duration
	SecureCookie bool
}

// SessionMiddleware resolves the visitor session from the ff_session cookie
// or a Bearer token. A missing or invalid token starts a new session whose
// token is returned in the cookie and the X-Session-Token header.
func SessionMiddleware(tokens SessionTokens, registry SessionRegistry, opts SessionOptions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		if cookieToken, err := c.Cookie(SessionCookie); err == nil && cookieToken != "" {
			token = cookieToken
		} else if headerToken, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization")); err == nil {
			// Fallback to Authorization header
			token = headerToken
		}

		sessionID := ""
		if token != "" {
			id, err := tokens.Verify(token)
			if err != nil {
				logger.Debug("[session] discarding invalid token", zap.Error(err))
			} else {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = registry.NewID()
			issued, err := tokens.Issue(sessionID)
			if err != nil {
				logger.Error("[session] failed to issue token", zap.Error(err))
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not start session"))
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, issued, int(opts.TTL.Seconds()), "/", "", opts.SecureCookie, true)
			c.Header(SessionHeader, issued)
		}

		c.Set(sessionKey, registry.Get(c.Request.Context(), sessionID))
		c.Next()
	}
}

// GetSession returns the session set by SessionMiddleware.
func GetSession(c *gin.Context) (*session.Session, bool) {
	s, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := s.(*session.Session)
	return sess, ok
}

// CurrentSession is GetSession for handlers. When no session is set it
// answers 500 and returns false.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
		c.Abort()
	}
	return s, ok
}
