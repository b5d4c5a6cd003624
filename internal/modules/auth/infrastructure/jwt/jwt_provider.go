package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/domain"
)

// CustomClaims carries the caller's email next to the registered claims.
// The user id travels in the standard "sub" claim.
type CustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the domain identity.
func (c *CustomClaims) Identity() (domain.Identity, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return domain.Identity{}, jwt.ErrTokenInvalidSubject
	}
	return domain.Identity{UserID: id, Email: c.Email}, nil
}

// GenerateToken creates an HS256 token for the user, valid for duration.
// Every token gets a unique jti.
func GenerateToken(secret string, duration time.Duration, userID int64, email string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses tokenStr, checks the HMAC signature against secret and
// requires an unexpired exp claim.
func ValidateToken(tokenStr string, secret string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenMalformed
}
