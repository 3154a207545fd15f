// Package power tracks each player's power reserve: a single balance
// with a hard ceiling. Gains beyond the ceiling evaporate, spends are all
// or nothing.
package power

import (
	"errors"
	"fmt"
)

// ErrInsufficientPower reports a spend larger than the current balance.
var ErrInsufficientPower = errors.New("insufficient power")

// Ledger is one player's power account.
type Ledger struct {
	balance int
	ceiling int
}

// NewLedger returns a ledger opened at start with the given ceiling.
func NewLedger(start, ceiling int) (*Ledger, error) {
	if ceiling < 0 {
		return nil, fmt.Errorf("cannot open ledger: negative ceiling %d", ceiling)
	}
	if start < 0 || start > ceiling {
		return nil, fmt.Errorf("cannot open ledger: start %d outside [0,%d]", start, ceiling)
	}
	return &Ledger{balance: start, ceiling: ceiling}, nil
}

// Balance returns the current power.
func (l *Ledger) Balance() int {
	return l.balance
}

// Ceiling returns the maximum the balance can ever reach.
func (l *Ledger) Ceiling() int {
	return l.ceiling
}

// Gain credits up to n power, clipping at the ceiling, and returns the
// amount actually credited.
func (l *Ledger) Gain(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("power: negative gain %d", n))
	}
	credited := min(n, l.ceiling-l.balance)
	l.balance += credited
	return credited
}

// Spend debits n power. On failure the balance is untouched; there are no
// partial spends.
func (l *Ledger) Spend(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("power: negative spend %d", n))
	}
	if n > l.balance {
		return fmt.Errorf("cannot spend %d power with balance %d: %w", n, l.balance, ErrInsufficientPower)
	}
	l.balance -= n
	return nil
}
