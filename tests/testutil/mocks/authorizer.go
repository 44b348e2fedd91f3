package mocks

import (
	"context"
	"sync"

	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

// CheckCall records one authorization check.
type CheckCall struct {
	Principal authz.Principal
	Resource  string
	Action    string
	Options   authz.CheckOptions
}

// Authorizer is a mock implementation of authz.Authorizer. By default every
// check passes; set Errors.Check to simulate a denial.
type Authorizer struct {
	mu sync.RWMutex

	// Recorded calls, in order
	CheckCalls []CheckCall

	// Call tracking
	Calls struct {
		Check int
	}

	// Error injection
	Errors struct {
		Check error
	}
}

// NewAuthorizer creates a new mock Authorizer.
func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

func (m *Authorizer) Check(ctx context.Context, p authz.Principal, resource, action string, opts authz.CheckOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Check++

	m.CheckCalls = append(m.CheckCalls, CheckCall{
		Principal: p,
		Resource:  resource,
		Action:    action,
		Options:   opts,
	})

	if m.Errors.Check != nil {
		return m.Errors.Check
	}
	return nil
}

// LastCheck returns the most recent check, or nil if none were made.
func (m *Authorizer) LastCheck() *CheckCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.CheckCalls) == 0 {
		return nil
	}
	call := m.CheckCalls[len(m.CheckCalls)-1]
	return &call
}
