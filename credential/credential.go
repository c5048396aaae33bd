// Package credential resolves provider secrets at call time.
//
// Adapters hold a Resolver and ask it for the secret on every request, so a
// key exported after startup is picked up and a missing key fails the single
// call that needs it instead of the whole process.
package credential

import (
	"context"
	"os"
	"strings"

	"github.com/kbukum/airelay/errors"
)

// Resolver returns the secret registered under name.
type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// EnvResolver reads secrets from the process environment.
type EnvResolver struct{}

// NewEnvResolver returns a Resolver backed by os.LookupEnv.
func NewEnvResolver() *EnvResolver { return &EnvResolver{} }

// Resolve returns the variable's value, or MISSING_CREDENTIAL when it is
// unset or blank.
func (EnvResolver) Resolve(_ context.Context, name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", errors.MissingCredential(name)
	}
	return v, nil
}

// StaticResolver serves secrets from a fixed map.
type StaticResolver map[string]string

// Resolve returns the mapped value, or MISSING_CREDENTIAL.
func (s StaticResolver) Resolve(_ context.Context, name string) (string, error) {
	if v := s[name]; strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", errors.MissingCredential(name)
}

// ChainResolver tries each resolver in order and returns the first hit.
// Only MISSING_CREDENTIAL falls through; any other error stops the chain.
type ChainResolver []Resolver

// Resolve implements Resolver.
func (c ChainResolver) Resolve(ctx context.Context, name string) (string, error) {
	for _, r := range c {
		v, err := r.Resolve(ctx, name)
		if err == nil {
			return v, nil
		}
		if !errors.HasCode(err, errors.ErrCodeMissingCredential) {
			return "", err
		}
	}
	return "", errors.MissingCredential(name)
}
