package password

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/postfeed-server/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)

// Algorithm names a supported hashing scheme.
type Algorithm string

const (
	Argon2id Algorithm = "argon2id"
	Bcrypt   Algorithm = "bcrypt"
)

// ErrUnknownHash is returned by Verify for hashes in an unrecognised format.
var ErrUnknownHash = errors.New("unknown password hash format")

// Hasher hashes new passwords with the configured algorithm and verifies
// hashes produced by any supported algorithm.
type Hasher struct {
	algorithm  Algorithm
	params     *argon2id.Params
	bcryptCost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithArgon2Params overrides the argon2id parameters.
func WithArgon2Params(p *argon2id.Params) Option {
	return func(h *Hasher) { h.params = p }
}

// WithBcryptCost overrides the bcrypt cost.
func WithBcryptCost(cost int) Option {
	return func(h *Hasher) { h.bcryptCost = cost }
}

// New creates a Hasher for the given algorithm.
func New(algorithm Algorithm, opts ...Option) (*Hasher, error) {
	h := &Hasher{
		algorithm:  algorithm,
		params:     argon2id.DefaultParams,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(h)
	}

	switch h.algorithm {
	case Argon2id:
		if h.params == nil {
			return nil, errors.New("argon2id params not set")
		}
	case Bcrypt:
		if h.bcryptCost < bcrypt.MinCost || h.bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range", h.bcryptCost)
		}
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", algorithm)
	}

	return h, nil
}

// NewDefault returns an argon2id Hasher with default parameters.
func NewDefault() *Hasher {
	return &Hasher{algorithm: Argon2id, params: argon2id.DefaultParams, bcryptCost: bcrypt.DefaultCost}
}

// Algorithm returns the algorithm used for new hashes.
func (h *Hasher) Algorithm() Algorithm {
	return h.algorithm
}

// Hash returns the encoded hash, e.g. $argon2id$v=19$m=... or $2a$12$...
func (h *Hasher) Hash(plain string) (string, error) {
	switch h.algorithm {
	case Bcrypt:
		b, err := bcrypt.GenerateFromPassword([]byte(plain), h.bcryptCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(b), nil
	default:
		encoded, err := argon2id.CreateHash(plain, h.params)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return encoded, nil
	}
}

// Verify compares plain against encoded in constant time.
func (h *Hasher) Verify(plain, encoded string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		ok, err := argon2id.ComparePasswordAndHash(plain, encoded)
		if err != nil {
			return false, fmt.Errorf("failed to verify password: %w", err)
		}
		return ok, nil
	case isBcrypt(encoded):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to verify password: %w", err)
		}
		return true, nil
	default:
		return false, ErrUnknownHash
	}
}

func isBcrypt(encoded string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(encoded, prefix) {
			return true
		}
	}
	return false
}
