/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lifecycle

import (
	"errors"
	"sync/atomic"

	"github.com/zcred/vcs/internal/pkg/log"
)

var logger = log.New("lifecycle")

// ErrNotStarted is returned by components that are used before Start completed.
var ErrNotStarted = errors.New("service has not started")

// State of a component. Transitions only move forward.
type State uint32

const (
	StateNotStarted State = iota
	StateStarting
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Opt sets a Lifecycle hook.
type Opt func(lc *Lifecycle)

// WithStart sets the hook run once by the first Start.
func WithStart(start func()) Opt {
	return func(lc *Lifecycle) {
		lc.onStart = start
	}
}

// WithStop sets the hook run once by the first Stop after Start.
func WithStop(stop func()) Opt {
	return func(lc *Lifecycle) {
		lc.onStop = stop
	}
}

// Lifecycle guards the start and stop hooks of a long running component,
// e.g. the event bus and its subscribers.
type Lifecycle struct {
	name    string
	state   atomic.Uint32
	onStart func()
	onStop  func()
}

func New(name string, opts ...Opt) *Lifecycle {
	lc := &Lifecycle{
		name:    name,
		onStart: func() {},
		onStop:  func() {},
	}

	for _, opt := range opts {
		opt(lc)
	}

	return lc
}

func (lc *Lifecycle) Start() {
	if !lc.transition(StateNotStarted, StateStarting) {
		return
	}

	lc.onStart()
	lc.state.Store(uint32(StateStarted))

	logger.Debug("service started", log.WithService(lc.name))
}

func (lc *Lifecycle) Stop() {
	if !lc.transition(StateStarted, StateStopped) {
		return
	}

	lc.onStop()

	logger.Debug("service stopped", log.WithService(lc.name))
}

func (lc *Lifecycle) State() State {
	return State(lc.state.Load())
}

// Started reports whether Start completed and Stop was not called yet.
func (lc *Lifecycle) Started() bool {
	return lc.State() == StateStarted
}

func (lc *Lifecycle) transition(from, to State) bool {
	if lc.state.CompareAndSwap(uint32(from), uint32(to)) {
		return true
	}

	logger.Debug("ignoring state change",
		log.WithService(lc.name), log.WithState(lc.State().String()), log.WithTargetState(to.String()))

	return false
}
