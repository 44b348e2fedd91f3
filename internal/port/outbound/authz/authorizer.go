// Package authz defines the opaque capability check the update path gates
// on. The rule engine behind it is a collaborator, not reimplemented here.
package authz

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"
)

// Principal identifies the caller. AccountID may be empty for pure admin
// tokens; UserID is the acting identity recorded on change events.
type Principal struct {
	AccountID types.Optional[types.ID]
	UserID    types.ID
	Scopes    []string
}

// CheckOptions carries evaluation context for a capability check.
type CheckOptions struct {
	// Owner, when set, lets the evaluation special-case self-ownership of
	// the resource.
	Owner types.Optional[types.ID]
}

// Authorizer evaluates whether a principal may perform an action on a
// resource. A denial is returned as an error and must abort before any
// write.
type Authorizer interface {
	Check(ctx context.Context, p Principal, resource, action string, opts CheckOptions) error
}
