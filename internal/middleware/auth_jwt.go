package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSubject is the owner every token is issued to.
const DefaultSubject = "owner"

type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for subject valid for ttl.
func IssueToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET is required")
	}
	if subject == "" {
		subject = DefaultSubject
	}
	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// RequireAuth rejects requests without a valid bearer token. With an empty
// secret the planner runs open and every request passes.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims Claims
		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing sub")
		}

		c.Locals("subject", claims.Subject)
		return c.Next()
	}
}

// SubjectFromLocals returns the subject RequireAuth stored, if any.
func SubjectFromLocals(c *fiber.Ctx) (string, bool) {
	sub, _ := c.Locals("subject").(string)
	return sub, sub != ""
}
