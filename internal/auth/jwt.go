package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload understood by this service:
//
//	{"id": 5, "email": "ann@example.com", "role": "user", "iss": "...", "iat": ..., "exp": ...}
//
// "sub" is optional; when present it must equal "id".
type tokenClaims struct {
	jwt.RegisteredClaims

	UserID int64  `json:"id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
}

// Validate implements [jwt.ClaimsValidator]. It runs after the registered
// claims (exp, iss) have been checked by the parser.
func (c *tokenClaims) Validate() error {
	if c.UserID <= 0 {
		return errInvalidSubject
	}
	if c.Subject != "" && c.Subject != strconv.FormatInt(c.UserID, 10) {
		return errInvalidSubject
	}
	if !models.Role(c.Role).IsValid() {
		return errInvalidRole
	}
	return nil
}

// jwtVerifier implements [Verifier] for HMAC-SHA256 signed JWTs.
type jwtVerifier struct {
	// signKey is the HMAC secret used to verify token signatures.
	signKey []byte

	parser *jwt.Parser
}

// NewJWTVerifier constructs a [Verifier] that accepts HS256 tokens signed
// with cfg.TokenSignKey. Expiry is mandatory. When cfg.TokenIssuer is set,
// the "iss" claim must match it.
//
// The returned verifier is safe for concurrent use; all state is read-only
// after construction.
func NewJWTVerifier(cfg config.App) Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if cfg.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.TokenIssuer))
	}

	return &jwtVerifier{
		signKey: []byte(cfg.TokenSignKey),
		parser:  jwt.NewParser(opts...),
	}
}

// Verify validates tokenString and returns the embedded claim.
//
// The precise failure reason is written to the context logger at debug
// level only; callers always receive [ErrUnauthenticated].
func (v *jwtVerifier) Verify(ctx context.Context, tokenString string) (*Claim, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		log.Debug().Str("reason", "missing").Msg("credential rejected")
		return nil, ErrUnauthenticated
	}

	claims := new(tokenClaims)
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.signKey, nil
	})
	if err != nil {
		log.Debug().Err(err).Str("reason", rejectionReason(err)).Msg("credential rejected")
		return nil, ErrUnauthenticated
	}

	return &Claim{
		subjectID: claims.UserID,
		email:     claims.Email,
		role:      models.Role(claims.Role),
	}, nil
}

// rejectionReason maps a JWT parsing error to a coarse label for audit logs.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return "claims"
	default:
		return "invalid"
	}
}

// TokenIssuer signs tokens that [NewJWTVerifier] accepts when built from the
// same [config.App].
type TokenIssuer struct {
	signKey       []byte
	issuer        string
	tokenDuration time.Duration
}

// NewTokenIssuer constructs a [TokenIssuer]. Sign key, issuer and a positive
// duration are required.
func NewTokenIssuer(cfg config.App) (*TokenIssuer, error) {
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration <= 0 {
		return nil, ErrInvalidIssuerParams
	}

	return &TokenIssuer{
		signKey:       []byte(cfg.TokenSignKey),
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
	}, nil
}

// Issue creates a signed HS256 token for the given identity.
//
// The token includes the following claims:
//   - id, email, role: the identity
//   - sub: the id encoded as a string
//   - iss: the configured issuer
//   - iat / exp: now and now plus the configured duration
func (i *TokenIssuer) Issue(userID int64, email string, role models.Role) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
		Role:   role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}
