package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig holds the signing secret and token lifetime.
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// Global config, set by Init.
var jwtConfig *JWTConfig

// Init configures the JWT package.
func Init(secret string, accessExpiryMinutes int) {
	jwtConfig = &JWTConfig{
		Secret:            secret,
		AccessTokenExpiry: time.Duration(accessExpiryMinutes) * time.Minute,
	}
}

// Claims carried by an access token. The subject claim holds the user id
// issued by the external user service; UserId duplicates it decoded, so
// downstream code does not reparse the subject.
type Claims struct {
	UserId uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 access token for the given user id.
// The user service is the normal issuer of tokens; this is used by local
// tooling and tests.
func GenerateAccessToken(userId uint64) (string, error) {
	claims := Claims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "midas_family",
			Subject:   strconv.FormatUint(userId, 10),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.Secret))
}

// ParseToken validates a token string and returns its claims. When the
// UserId claim is absent (token minted by the user service with only a
// subject), the subject is decoded into it.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.UserId == 0 && claims.Subject != "" {
		if id, err := strconv.ParseUint(claims.Subject, 10, 64); err == nil {
			claims.UserId = id
		}
	}
	return claims, nil
}
