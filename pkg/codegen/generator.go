// Package codegen produces the short human-shareable order codes
// customers use to look up an order without an account.
package codegen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrExhausted = errors.New("order code space exhausted")

// Exists asks the store whether a code is already taken (all-time, not
// just among active orders).
type Exists func(code string) (bool, error)

type Generator struct {
	prefix   string
	attempts int
}

func New(prefix string) *Generator { return &Generator{prefix: prefix, attempts: 64} }

// OrderCode returns a fresh PREFIX-NNNN code, retrying on collisions.
// Random four-digit suffixes first; if those keep colliding, a linear
// probe from a random start covers the remaining space.
func (g *Generator) OrderCode(exists Exists) (string, error) {
	for i := 0; i < g.attempts; i++ {
		code := fmt.Sprintf("%s-%04d", g.prefix, 1000+rand.IntN(9000))
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	start := rand.IntN(9000)
	for i := 0; i < 9000; i++ {
		code := fmt.Sprintf("%s-%04d", g.prefix, 1000+(start+i)%9000)
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}
