package entitlement

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"
)

// SubscribedClaim is the boolean claim that grants playback.
const SubscribedClaim = "subscribed"

// TokenConfig is the settings block for the token source.
type TokenConfig struct {
	Secret string `yaml:"secret" mapstructure:"secret" validate:"required,min=16"`
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	Token  string `yaml:"token" mapstructure:"token"`
}

// Token grants playback while it holds a valid HS256 subscription token whose
// subscribed claim is true. Signature and expiry are checked on every call, so
// an expired token stops granting playback without any further action.
type Token struct {
	mu     sync.RWMutex
	token  string
	secret []byte
	parser *jwt.Parser
	// accept checks signature and shape only, so an expired token can still be stored
	accept *jwt.Parser
}

// NewToken creates a token source. An empty initial token denies playback.
func NewToken(config TokenConfig) (*Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}

	t := &Token{
		secret: []byte(config.Secret),
		parser: jwt.NewParser(opts...),
		accept: jwt.NewParser(append(opts, jwt.WithoutClaimsValidation())...),
	}
	if config.Token != "" {
		if err := t.SetToken(config.Token); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// IsEntitled implements Source.
func (t *Token) IsEntitled() bool {
	t.mu.RLock()
	token := t.token
	t.mu.RUnlock()

	if token == "" {
		return false
	}
	subscribed, err := t.verify(t.parser, token)
	if err != nil {
		zlog.Debug().Msgf("entitlement: token rejected: %v", err)
		return false
	}
	return subscribed
}

// Name implements Source.
func (t *Token) Name() string { return "token" }

// SetToken replaces the held token. A token with a bad signature or an unparseable
// body is rejected and the previous one is kept. An empty token clears it.
func (t *Token) SetToken(token string) error {
	if token != "" {
		if _, err := t.verify(t.accept, token); err != nil {
			return errors.Wrap(err, "invalid subscription token")
		}
	}

	t.mu.Lock()
	t.token = token
	t.mu.Unlock()

	zlog.Info().Msgf("entitlement: subscription token updated: present=%t", token != "")
	return nil
}

func (t *Token) verify(parser *jwt.Parser, token string) (bool, error) {
	parsed, err := parser.Parse(token, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return false, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false, errors.New("unexpected claims type")
	}
	subscribed, _ := claims[SubscribedClaim].(bool)
	return subscribed, nil
}

// IssueToken signs a subscription token. It is used by the admin CLI and tests.
// A zero ttl issues a token without expiry; a negative one is already expired.
func IssueToken(secret string, subscribed bool, ttl time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		SubscribedClaim: subscribed,
		"iat":           now.Unix(),
	}
	if ttl != 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}
	if issuer != "" {
		claims["iss"] = issuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}
