package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"adsgenie-backend/internal/config"
	"adsgenie-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const UserIDKey = "user_id"

// TokenVerifier resolves an access token to a user id remotely. ctx bounds
// how long the middleware waits for an answer.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware authenticates the caller from "Authorization: Bearer <jwt>".
// With a JWT secret configured the token is verified locally as HS256;
// otherwise verifier is asked. verifier may be nil when a secret is set.
func AuthMiddleware(cfg *config.Config, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, "missing authorization header")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abortUnauthenticated(c, "empty token")
			return
		}

		// Some clients URL-encode the token
		if decoded, err := url.QueryUnescape(tokenString); err == nil {
			tokenString = decoded
		}

		var (
			userID string
			err    error
		)
		switch {
		case cfg.SupabaseJWTSecret != "":
			userID, err = verifyLocal(tokenString, cfg.SupabaseJWTSecret)
		case verifier != nil:
			userID, err = verifier.VerifyToken(c.Request.Context(), tokenString)
		default:
			abortUnauthenticated(c, "token verification is not configured")
			return
		}
		if err != nil {
			abortUnauthenticated(c, err.Error())
			return
		}
		if userID == "" {
			abortUnauthenticated(c, "missing user id in token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CallerID returns the authenticated user id, or "" when there is none.
func CallerID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// verifyLocal checks a Supabase HS256 token and returns its "sub" claim.
func verifyLocal(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		// Supabase JWT secret is used directly as the signing key
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "signature is invalid"):
			return "", errors.New("token signature is invalid")
		case strings.Contains(err.Error(), "token is expired"):
			return "", errors.New("token has expired")
		case strings.Contains(err.Error(), "token is malformed"):
			return "", errors.New("token is malformed")
		}
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", errors.New("invalid token claims")
	}
	return sub, nil
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthenticated",
		Message: message,
	})
}
