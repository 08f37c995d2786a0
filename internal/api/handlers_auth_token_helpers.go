package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/furrow/internal/models"
)

// setAuthCookie issues a signed session token for the user. Without
// remember-me the cookie is a session cookie even though the token itself
// carries a week of validity, so closing the browser ends the session.
func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User, rememberMe bool) error {
	tokenTTL := defaultAuthTokenTTL
	if rememberMe {
		tokenTTL = rememberAuthTokenTTL
	}

	token, err := handler.buildToken(user, tokenTTL)
	if err != nil {
		return err
	}

	var expires time.Time
	if rememberMe {
		expires = time.Now().Add(tokenTTL)
	}
	handler.writeAuthCookie(c, token, expires)
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	handler.writeAuthCookie(c, "", time.Now().Add(-1*time.Hour))
}

// writeAuthCookie sets the auth cookie with the attributes every session
// cookie shares. A zero expires produces a session cookie.
func (handler *Handler) writeAuthCookie(c *fiber.Ctx, value string, expires time.Time) {
	cookie := &fiber.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	}
	if !expires.IsZero() {
		cookie.Expires = expires
	}
	c.Cookie(cookie)
}

func (handler *Handler) buildToken(user *models.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultAuthTokenTTL
	}
	now := time.Now()

	claims := authClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    authTokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}
