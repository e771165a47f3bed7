package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the session token.
const HeaderName = "x-auth-token"

var (
	ErrTokenMissing = errors.New("no token provided")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the identity claim set embedded in a session token.
type Claims struct {
	UserID   uuid.UUID // Subject user identifier
	Email    string
	Username string
	Role     string
}

// JWT issues and verifies signed session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime; zero means tokens never expire
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secretKey string) Opt {
	return func(j *JWT) { j.SecretKey = secretKey }
}

// WithExpiration sets the token lifetime. A zero duration issues
// tokens without an expiry claim.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token embedding the user's identity claims.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, email, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"email":    email,
		"username": username,
		"role":     role,
		"iat":      time.Now().Unix(),
	}
	if j.Exp > 0 {
		claims["exp"] = time.Now().Add(j.Exp).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns the embedded identity
// claims if the signature is valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	userIDStr, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{UserID: userID}
	claims.Email, _ = mapClaims["email"].(string)
	claims.Username, _ = mapClaims["username"].(string)
	claims.Role, _ = mapClaims["role"].(string)
	return claims, nil
}

// Validate checks that the token is well formed and correctly signed.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the x-auth-token header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	token := r.Header.Get(HeaderName)
	if token == "" {
		return "", ErrTokenMissing
	}
	return token, nil
}
