// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// Role is the closed set of community roles a user account can hold.
// The zero value is not a valid role.
type Role uint8

const (
	RoleUser Role = iota + 1
	RoleContentCreator
	RoleModerator
	RoleAdmin
)

// ErrUnknownRole is returned when a role name or stored value does not
// belong to the closed [Role] set.
var ErrUnknownRole = errors.New("unknown role")

var roleNames = map[Role]string{
	RoleUser:           "User",
	RoleContentCreator: "Content Creator",
	RoleModerator:      "Moderator",
	RoleAdmin:          "Admin",
}

// AllRoles lists every valid role from the lowest to the highest privilege.
func AllRoles() []Role {
	return []Role{RoleUser, RoleContentCreator, RoleModerator, RoleAdmin}
}

// ParseRole converts the canonical role name (as stored in the "users.role"
// column and exchanged over the API) into a [Role].
func ParseRole(name string) (Role, error) {
	for _, role := range AllRoles() {
		if role.String() == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// MarshalText implements [encoding.TextMarshaler]. Invalid roles cannot be
// marshaled.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Value implements [driver.Valuer] so roles are persisted by name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, uint8(r))
	}
	return r.String(), nil
}

// Scan implements [sql.Scanner].
func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrUnknownRole, src)
	}
}
