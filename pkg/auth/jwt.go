package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoKeyMaterial is returned by NewVerifier when neither a public key nor a
// secret is configured. Callers treat it as "authentication disabled".
var ErrNoKeyMaterial = errors.New("jwt configuration requires PublicKeyPEM or Secret")

// VerifierConfig holds JWT validation configuration.
type VerifierConfig struct {
	// PublicKeyPEM is a PEM-encoded RSA public key; tokens must be RS256.
	PublicKeyPEM string

	// Secret is an HMAC-SHA256 key, used only when PublicKeyPEM is empty.
	Secret string

	// Issuer, when set, must match the token's iss claim.
	Issuer string
}

// Verifier validates bearer tokens. It never issues them.
type Verifier struct {
	parser *jwt.Parser
	key    any
}

// NewVerifier creates a Verifier. RS256 takes precedence over HS256 when both
// key kinds are configured.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	v := &Verifier{}
	switch {
	case cfg.PublicKeyPEM != "":
		pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		v.key = pubKey
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))

	case cfg.Secret != "":
		v.key = []byte(cfg.Secret)
		opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	default:
		return nil, ErrNoKeyMaterial
	}

	v.parser = jwt.NewParser(opts...)
	return v, nil
}

// Verify parses and validates a JWT token string.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// LoadKeyFromFile reads a PEM-encoded key from a file path.
func LoadKeyFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q: %w", path, err)
	}
	return data, nil
}
