// Package idgen produces readable identifiers such as PS-V1StGXR8_Z and
// assigns them after checking the store for collisions.
package idgen

import (
	"context"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultSize     = 10
	WideSize        = 16
	DefaultAttempts = 8
)

// ErrExhausted is returned when every candidate collided.
var ErrExhausted = errors.New("idgen: no free identifier found")

// ExistsFunc reports whether a candidate is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Generate returns "<prefix>-<token>" with a token of the given size.
func Generate(prefix string, size int) (string, error) {
	token, err := gonanoid.New(size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, token), nil
}

type Assigner struct {
	attempts int
	generate func(prefix string, size int) (string, error)
}

func NewAssigner() *Assigner {
	return &Assigner{attempts: DefaultAttempts, generate: Generate}
}

// Assign tries DefaultSize tokens first and falls back to WideSize tokens,
// each for a bounded number of attempts.
func (a *Assigner) Assign(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	for _, size := range []int{DefaultSize, WideSize} {
		for i := 0; i < a.attempts; i++ {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			candidate, err := a.generate(prefix, size)
			if err != nil {
				return "", err
			}

			taken, err := exists(ctx, candidate)
			if err != nil {
				return "", err
			}
			if !taken {
				return candidate, nil
			}
		}
	}
	return "", ErrExhausted
}
