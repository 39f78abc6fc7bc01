// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lockmap provides per-address exclusive locks. Entries are
// created on demand and reclaimed once the last holder releases, so the
// map stays proportional to the number of contended addresses.
package lockmap

import (
	"sync"

	"github.com/smartwallet-labs/walletfactory/codec"
)

type holderLock struct {
	holders int
	mu      sync.Mutex
}

type Lockmap struct {
	l sync.Mutex
	m map[codec.Address]*holderLock
}

func New(initSize int) *Lockmap {
	return &Lockmap{
		m: make(map[codec.Address]*holderLock, initSize),
	}
}

func (l *Lockmap) Lock(addr codec.Address) {
	l.l.Lock()
	hl, ok := l.m[addr]
	if ok {
		hl.holders++
		l.l.Unlock()

		hl.mu.Lock()
		return
	}
	hl = &holderLock{holders: 1}
	hl.mu.Lock()
	l.m[addr] = hl
	l.l.Unlock()
}

func (l *Lockmap) Unlock(addr codec.Address) {
	l.l.Lock()
	hl := l.m[addr]
	if hl.holders > 1 {
		hl.holders--
		l.l.Unlock()
		hl.mu.Unlock()
	} else {
		delete(l.m, addr)
		l.l.Unlock()
	}
}

// Locks returns the number of addresses with live lock entries.
func (l *Lockmap) Locks() int {
	l.l.Lock()
	defer l.l.Unlock()

	return len(l.m)
}
