package session

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the routing privilege of a profile.
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleAuthority Role = "authority"
)

// RoleResolver maps account group identifiers to roles. Groups it does not
// know resolve to RoleCitizen.
type RoleResolver struct {
	groups map[uuid.UUID]Role
}

// NewRoleResolver builds a resolver granting RoleAuthority to each of the
// given account group UUIDs.
func NewRoleResolver(authorityGroupIDs []string) (RoleResolver, error) {
	r := RoleResolver{groups: make(map[uuid.UUID]Role, len(authorityGroupIDs))}
	for _, raw := range authorityGroupIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return RoleResolver{}, fmt.Errorf("authority group %q: %w", raw, err)
		}
		r.groups[id] = RoleAuthority
	}
	return r, nil
}

// Resolve returns the role of a profile belonging to groupID. Malformed or
// empty ids are ordinary citizens.
func (r RoleResolver) Resolve(groupID string) Role {
	id, err := uuid.Parse(groupID)
	if err != nil {
		return RoleCitizen
	}
	if role, ok := r.groups[id]; ok {
		return role
	}
	return RoleCitizen
}
