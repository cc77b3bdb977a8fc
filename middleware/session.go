package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookie = "xl_session"
	sessionTTL    = 30 * 24 * time.Hour
)

// Session gives every browsing context a guest identity. The session id in a
// signed cookie scopes the cart storage key; losing the cookie loses the
// cart, the same way cleared localStorage would.
func Session(c *gin.Context) {
	if tokenString, err := c.Cookie(SessionCookie); err == nil {
		if sessionID, err := parseSessionToken(tokenString); err == nil {
			c.Set("session_id", sessionID)
			c.Next()
			return
		}
	}

	// Missing, invalid or expired cookie: mint a fresh guest session.
	sessionID := "guest_" + generateRandomString(16)
	token, err := issueSessionToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		c.Abort()
		return
	}

	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	c.Set("session_id", sessionID)
	c.Next()
}

// SessionID reads the id the Session middleware stored on the context.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

func issueSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       "guest",
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func parseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired session token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return "", errors.New("session id missing from token")
	}
	return sessionID, nil
}

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("xl-kuota-dev-secret")
}
