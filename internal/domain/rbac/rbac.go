// Package rbac computes a user's effective permission set from
// many-to-many role/permission assignments. The effective set is the union
// across ALL assigned roles, never just the first one. Unknown users
// resolve to the empty set: authorization fails closed.
package rbac

import (
	"errors"

	"gorm.io/gorm"
)

// PermissionSet is the effective permission set of one user.
type PermissionSet map[string]struct{}

// Union builds the permission set covered by the given roles. Duplicate
// grants across roles collapse to one entry.
func Union(roles []Role) PermissionSet {
	set := make(PermissionSet)
	for _, role := range roles {
		for _, rp := range role.RolePermissions {
			if rp.Permission != nil {
				set[rp.Permission.Name] = struct{}{}
			}
		}
	}
	return set
}

// Has reports whether the set contains the named permission.
func (s PermissionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// HasAny reports whether the set contains at least one of the names.
func (s PermissionSet) HasAny(names ...string) bool {
	for _, n := range names {
		if s.Has(n) {
			return true
		}
	}
	return false
}

// HasAll reports whether the set contains every one of the names.
func (s PermissionSet) HasAll(names ...string) bool {
	for _, n := range names {
		if !s.Has(n) {
			return false
		}
	}
	return true
}

// Names returns the set as a slice, unordered.
func (s PermissionSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	return names
}

// ResolvePermissions loads every role assigned to the user together with the
// role's permissions and returns the union. An unknown userID yields an
// empty set, not an error.
//
// Pass db in, do not import blockcms/database here (avoids import cycle).
func ResolvePermissions(db *gorm.DB, userID string) (PermissionSet, error) {
	roles, err := RolesForUser(db, userID)
	if err != nil {
		return nil, err
	}
	return Union(roles), nil
}

// RolesForUser fetches all roles assigned to the user, permissions
// preloaded.
func RolesForUser(db *gorm.DB, userID string) ([]Role, error) {
	var assignments []UserRole
	err := db.
		Where("user_id = ?", userID).
		Preload("Role.RolePermissions.Permission").
		Find(&assignments).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	roles := make([]Role, 0, len(assignments))
	for _, a := range assignments {
		if a.Role != nil {
			roles = append(roles, *a.Role)
		}
	}
	return roles, nil
}

// HasPermission reports whether the user's effective permission set
// contains the named permission. Resolution errors deny access.
func HasPermission(db *gorm.DB, userID, name string) bool {
	set, err := ResolvePermissions(db, userID)
	if err != nil {
		return false
	}
	return set.Has(name)
}

// HasAnyPermission reports whether the user holds at least one of the
// named permissions.
func HasAnyPermission(db *gorm.DB, userID string, names ...string) bool {
	set, err := ResolvePermissions(db, userID)
	if err != nil {
		return false
	}
	return set.HasAny(names...)
}

// HasAllPermissions reports whether the user holds every named permission.
func HasAllPermissions(db *gorm.DB, userID string, names ...string) bool {
	set, err := ResolvePermissions(db, userID)
	if err != nil {
		return false
	}
	return set.HasAll(names...)
}
