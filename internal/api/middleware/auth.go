package middleware

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-position-api/internal/api/shared/errors"
	"github.com/feral-file/ff-position-api/internal/domain"
	"github.com/feral-file/ff-position-api/internal/logger"
)

const (
	METHOD_JWT    = "jwt"
	METHOD_APIKEY = "apikey"

	operatorKey = "operator"
)

// AuthConfig holds the credentials accepted on listing administration routes
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Operator identifies the administrator behind a request
type Operator struct {
	Method  string
	Subject string
}

// AdminAuth verifies operator credentials for listing administration
type AdminAuth struct {
	publicKey *rsa.PublicKey
	// api key -> subject used in logs
	apiKeys map[string]string
}

// NewAdminAuth parses the configured credentials once.
// An invalid public key is a configuration error.
func NewAdminAuth(cfg AuthConfig) (*AdminAuth, error) {
	auth := &AdminAuth{apiKeys: make(map[string]string, len(cfg.APIKeys))}

	if cfg.JWTPublicKey != "" {
		publicKey, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT public key: %w", err)
		}
		auth.publicKey = publicKey
	}

	for _, key := range cfg.APIKeys {
		if key != "" {
			auth.apiKeys[key] = apiKeySubject(key)
		}
	}

	return auth, nil
}

// Authenticate resolves the operator behind an Authorization header.
// Every failure wraps domain.ErrUnauthorized.
func (a *AdminAuth) Authenticate(header string) (Operator, error) {
	if header == "" {
		return Operator{}, unauthorized("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || credentials == "" {
		return Operator{}, unauthorized("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		subject, err := a.verifyJWT(credentials)
		if err != nil {
			return Operator{}, err
		}
		return Operator{Method: METHOD_JWT, Subject: subject}, nil

	case "apikey":
		if len(a.apiKeys) == 0 {
			return Operator{}, unauthorized("no API keys configured")
		}
		subject, ok := a.apiKeys[credentials]
		if !ok {
			return Operator{}, unauthorized("invalid API key")
		}
		return Operator{Method: METHOD_APIKEY, Subject: subject}, nil

	default:
		return Operator{}, unauthorized(fmt.Sprintf("unsupported authorization type: %s", scheme))
	}
}

// Middleware guards the admin route group. The operator is stored on the gin
// context and on the request context, so listing changes are logged with it.
func (a *AdminAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		operator, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(ctx, "Admin authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.FromDomain(err)
			c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
			return
		}

		c.Set(operatorKey, operator)
		ctx = logger.WithOperator(ctx, operator.Subject)
		c.Request = c.Request.WithContext(ctx)

		logger.DebugCtx(ctx, "Admin authenticated",
			zap.String("method", operator.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// OperatorFrom returns the operator authenticated by the admin middleware
func OperatorFrom(c *gin.Context) (Operator, bool) {
	value, ok := c.Get(operatorKey)
	if !ok {
		return Operator{}, false
	}
	operator, ok := value.(Operator)
	return operator, ok
}

// verifyJWT checks an RS-signed token and returns its subject.
// Expiry and not-before are enforced by the parser when present.
func (a *AdminAuth) verifyJWT(tokenString string) (string, error) {
	if a.publicKey == nil {
		return "", unauthorized("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	// listing changes are attributed to the subject
	if claims.Subject == "" {
		return "", unauthorized("token has no subject")
	}

	return claims.Subject, nil
}

func unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrUnauthorized, reason)
}

// apiKeySubject names an API key in logs without revealing it
func apiKeySubject(key string) string {
	sum := sha256.Sum256([]byte(key))
	return METHOD_APIKEY + ":" + hex.EncodeToString(sum[:4])
}

// parseRSAPublicKey parses an RSA public key in PKIX or PKCS1 PEM form
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
