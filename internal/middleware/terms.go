package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TermsCookieName is the cookie carrying the signed terms-acceptance token.
const TermsCookieName = "asc842_terms"

// termsSubject identifies acceptance tokens; anything else in the subject
// claim is rejected.
const termsSubject = "terms-accepted"

// IssueAcceptanceToken signs an expiring token recording that the client
// accepted the terms of use. Acceptance is session-scoped and anonymous, so
// the token carries no identity beyond its own validity window.
func IssueAcceptanceToken(secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   termsSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// HasAcceptedTerms reports whether the request carries a valid, unexpired
// acceptance token.
func HasAcceptedTerms(c *gin.Context, secret string) bool {
	tokenString, err := c.Cookie(TermsCookieName)
	if err != nil || tokenString == "" {
		return false
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	return ok && claims.Subject == termsSubject
}

// RequireTermsAcceptance guards the calculation and download routes. It is an
// explicit pipeline stage composed ahead of the handlers, never a runtime
// rewrap of an existing binding.
func RequireTermsAcceptance(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasAcceptedTerms(c, secret) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Request rejected: terms of use not accepted")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Terms of use must be accepted before calculating"})
			return
		}
		c.Next()
	}
}
