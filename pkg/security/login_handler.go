package security

import (
	"net/http"
	"strconv"
	"time"

	"assettrack/internal/core/response"
	"assettrack/internal/rate_limiter"
	"assettrack/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRecorder interface {
	LoginAttempt(outcome string)
}

type LoginHandler struct {
	admins      AdminFinder
	issuer      *TokenIssuer
	rateLimiter *rate_limiter.RateLimiter
	recorder    LoginRecorder
	logger      *zap.Logger
}

func NewLoginHandler(admins AdminFinder, issuer *TokenIssuer, limiter *rate_limiter.RateLimiter, recorder LoginRecorder, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{
		admins:      admins,
		issuer:      issuer,
		rateLimiter: limiter,
		recorder:    recorder,
		logger:      logger,
	}
}

func (l *LoginHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/auth/login", l.Login)
}

func (l *LoginHandler) Login(c *gin.Context) {
	key := clientKey(c)

	if !l.rateLimiter.IsAllowed(key) {
		remaining := l.rateLimiter.GetRemainingRequests(key)
		resetAt := l.rateLimiter.ResetAt(key).Format(time.RFC3339)
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.rateLimiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt)
		l.record("rate_limited")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":     "Too many login attempts. Try again later.",
			"remaining": remaining,
			"reset_at":  resetAt,
		})
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.record("failure")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": InvalidCredentials})
		return
	}

	admin, err := AuthenticateAdmin(c.Request.Context(), l.admins, req.Username, req.Password)
	if err != nil {
		l.record("failure")
		l.logger.Info("Login failed", zap.String("username", req.Username))
		response.Error(c, l.logger, err)
		return
	}

	token, err := l.issuer.GenerateJWT(admin.Username)
	if err != nil {
		l.logger.Error("Failed to generate token", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	l.record("success")
	c.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: admin.Username,
		Email:    admin.Email,
		FullName: admin.FullName,
	})
}

func (l *LoginHandler) record(outcome string) {
	if l.recorder != nil {
		l.recorder.LoginAttempt(outcome)
	}
}

// clientKey is the peer address. Forwarded headers count only when the
// engine's trusted proxies list covers the peer.
func clientKey(c *gin.Context) string {
	return c.ClientIP()
}
