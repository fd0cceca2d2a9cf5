package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/compstack/company_tracker_app/internal/dto"
	"github.com/compstack/company_tracker_app/internal/middleware"
	"github.com/compstack/company_tracker_app/internal/platform/config"
)

// authHandler issues bearer tokens to the conversational binding. There is no
// user store; the caller proves possession of the shared service secret.
type authHandler struct {
	cfg *config.Config
}

func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := &authHandler{cfg: cfg}
	r.POST("/auth/token", h.issueToken)
}

func (h *authHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.ServiceSecret), []byte(h.cfg.ServiceSecret)) != 1 {
		logger.Warn("Token request with wrong service secret")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid service secret"})
		return
	}

	expiresAt := time.Now().Add(h.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Issuer:    h.cfg.JWTIssuer,
		Subject:   "assistant",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
