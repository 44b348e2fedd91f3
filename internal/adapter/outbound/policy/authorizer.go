// Package policy implements the capability check against the scope claims
// carried on the caller's verified token. It is one implementation of the
// authz port; the update path treats the rule engine as opaque.
package policy

import (
	"context"
	"strings"

	domainerror "github.com/0xsj/overwatch-accounts/internal/domain/error"
	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

// scopeAuthorizer implements authz.Authorizer.
type scopeAuthorizer struct{}

// NewScopeAuthorizer creates an Authorizer that evaluates the principal's
// scope claims.
func NewScopeAuthorizer() authz.Authorizer {
	return &scopeAuthorizer{}
}

func (a *scopeAuthorizer) Check(ctx context.Context, p authz.Principal, resource, action string, opts authz.CheckOptions) error {
	// Owners always pass the scoped check on their own resource.
	if opts.Owner.IsPresent() && !p.UserID.IsEmpty() && p.UserID == opts.Owner.MustGet() {
		return nil
	}

	required := resourceBase(resource) + ":" + action
	wildcard := resourceBase(resource) + ":*"

	for _, scope := range p.Scopes {
		if scope == required || scope == wildcard {
			return nil
		}
	}

	return domainerror.ErrAccessDenied
}

// resourceBase strips an instance suffix: "accounts:abc123" -> "accounts".
func resourceBase(resource string) string {
	if i := strings.IndexByte(resource, ':'); i >= 0 {
		return resource[:i]
	}
	return resource
}
