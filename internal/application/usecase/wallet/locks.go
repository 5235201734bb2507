// Package wallet contains wallet-related use cases. Payment collection for
// registrations is wallet-only: credit is deposited first and then applied,
// and every application creates a Payment row the ledger can see.
package wallet

import (
	"sync"

	"github.com/google/uuid"
)

// Locks serializes wallet mutations per student so a concurrent
// check-then-debit cannot race two applies past the balance. One instance is
// shared by all wallet use cases.
type Locks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewLocks creates a new per-student lock set.
func NewLocks() *Locks {
	return &Locks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the lock for a student and returns the unlock function.
func (l *Locks) Lock(studentID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[studentID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[studentID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
