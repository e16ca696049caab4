package service

import (
	"sync"

	"github.com/noah-isme/tahfidz-api/internal/models"
)

// ReportLocks serialises check-then-write for one (learner, year, semester) triple.
type ReportLocks struct {
	mu    sync.Mutex
	locks map[string]*reportLock
}

type reportLock struct {
	mu   sync.Mutex
	refs int
}

// NewReportLocks constructs an empty lock table.
func NewReportLocks() *ReportLocks {
	return &ReportLocks{locks: make(map[string]*reportLock)}
}

// Lock blocks until the key is free and returns its release function.
func (l *ReportLocks) Lock(key models.ReportKey) func() {
	k := key.String()

	l.mu.Lock()
	entry, ok := l.locks[k]
	if !ok {
		entry = &reportLock{}
		l.locks[k] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, k)
		}
		l.mu.Unlock()
	}
}
