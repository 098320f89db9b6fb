package auth

import (
	"github.com/google/uuid"
)

// Action is a capability requested against a resource
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource identifies the target of a capability check
type Resource struct {
	Kind    string
	OwnerID uuid.UUID
}

// Policy decides whether an actor may perform an action on a resource. The
// domain services consult it on every mutation so the model can be tightened
// later (e.g. creator-only edits) without touching call sites.
type Policy interface {
	Allow(actorID uuid.UUID, action Action, res Resource) bool
}

// AuthenticatedPolicy allows any authenticated caller to act on any record.
// This is the current authorization model: authentication-gated, not
// ownership-gated.
type AuthenticatedPolicy struct{}

// NewAuthenticatedPolicy creates the current allow-all-authenticated policy
func NewAuthenticatedPolicy() *AuthenticatedPolicy {
	return &AuthenticatedPolicy{}
}

// Allow permits any action by any known actor
func (p *AuthenticatedPolicy) Allow(actorID uuid.UUID, action Action, res Resource) bool {
	return actorID != uuid.Nil
}
