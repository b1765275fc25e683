// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// keyedLocker hands out one RWMutex per storage key. Entries are reference
// counted and dropped once no goroutine holds or waits for them, so the
// registry only grows with the number of keys in use at the same moment.
type keyedLocker struct {
	mu    sync.Mutex
	locks map[string]*refRWMutex
}

type refRWMutex struct {
	sync.RWMutex
	refs int
}

func newKeyedLocker() *keyedLocker {
	return &keyedLocker{locks: make(map[string]*refRWMutex)}
}

func (l *keyedLocker) acquire(key string) *refRWMutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &refRWMutex{}
		l.locks[key] = m
	}
	m.refs++
	return m
}

func (l *keyedLocker) release(key string, m *refRWMutex) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m.refs--
	if m.refs == 0 {
		delete(l.locks, key)
	}
}

// Lock takes the exclusive lock for key and returns its release function.
func (l *keyedLocker) Lock(key string) (unlock func()) {
	m := l.acquire(key)
	m.Lock()
	return func() {
		m.Unlock()
		l.release(key, m)
	}
}

// RLock takes a shared lock for key and returns its release function.
func (l *keyedLocker) RLock(key string) (unlock func()) {
	m := l.acquire(key)
	m.RLock()
	return func() {
		m.RUnlock()
		l.release(key, m)
	}
}

func (l *keyedLocker) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
