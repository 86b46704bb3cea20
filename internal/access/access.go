// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import "github.com/MKhiriev/ml-community/models"

// Tier is an ordered privilege level. A higher tier includes every right of
// the lower ones.
type Tier uint8

const (
	// TierNone is held by accounts with an unknown role. It never passes a check.
	TierNone Tier = iota
	TierUser
	TierContentCreator
	// TierElevated is the moderation tier.
	TierElevated
	TierAdmin
)

var tierNames = map[Tier]string{
	TierNone:           "none",
	TierUser:           "user",
	TierContentCreator: "content-creator",
	TierElevated:       "elevated",
	TierAdmin:          "admin",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "invalid"
}

// TierOf maps a role to its tier. Roles outside the closed set get TierNone.
func TierOf(role models.Role) Tier {
	switch role {
	case models.RoleUser:
		return TierUser
	case models.RoleContentCreator:
		return TierContentCreator
	case models.RoleModerator:
		return TierElevated
	case models.RoleAdmin:
		return TierAdmin
	default:
		return TierNone
	}
}

// Reason explains a denied [Decision].
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonInsufficientRole Reason = "insufficient role"
	// ReasonNotOwner means ownership would have been enough, but the caller
	// neither owns the resource nor holds the required tier.
	ReasonNotOwner    Reason = "not owner"
	ReasonUnknownRole Reason = "unknown role"
)

// Requirement describes what an operation needs. When OwnerID is set the
// owner of that resource is allowed regardless of tier.
type Requirement struct {
	MinTier Tier
	OwnerID *int64
}

// Owner builds a requirement satisfied by the resource owner or by minTier.
func Owner(ownerID int64, minTier Tier) Requirement {
	return Requirement{MinTier: minTier, OwnerID: &ownerID}
}

// Decision is the outcome of [Authorize].
type Decision struct {
	Allowed bool
	Reason  Reason

	userID  int64
	have    Tier
	minTier Tier
}

// Err returns nil for an allowed decision and a *DeniedError otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &DeniedError{Reason: d.Reason, UserID: d.userID, Have: d.have, MinTier: d.minTier}
}

// Authorize decides whether user may perform an operation guarded by req.
// It is pure and does not look at IsActive; resolving an active caller is
// the authentication layer's job.
func Authorize(user models.User, req Requirement) Decision {
	have := TierOf(user.Role)
	d := Decision{userID: user.UserID, have: have, minTier: req.MinTier}

	if have == TierNone {
		d.Reason = ReasonUnknownRole
		return d
	}

	if have >= req.MinTier {
		d.Allowed = true
		return d
	}

	if req.OwnerID != nil {
		if *req.OwnerID == user.UserID {
			d.Allowed = true
			return d
		}
		d.Reason = ReasonNotOwner
		return d
	}

	d.Reason = ReasonInsufficientRole
	return d
}

// RequireTier is Authorize without an ownership option.
func RequireTier(user models.User, minTier Tier) error {
	return Authorize(user, Requirement{MinTier: minTier}).Err()
}

// RequireOwnerOr allows the owner of the resource or anyone at minTier.
func RequireOwnerOr(user models.User, ownerID int64, minTier Tier) error {
	return Authorize(user, Owner(ownerID, minTier)).Err()
}

// managingTier is the tier needed to act on someone else's account. Admin
// accounts are managed by admins only.
func managingTier(target models.User) Tier {
	if target.Role == models.RoleAdmin {
		return TierAdmin
	}
	return TierElevated
}

// CanManageUser allows actor to edit the profile of target: the owner always,
// anyone else at the elevated tier, or at Admin when target is an Admin.
func CanManageUser(actor, target models.User) error {
	return RequireOwnerOr(actor, target.UserID, managingTier(target))
}

// CanChangeStatus allows actor to activate, deactivate or verify target.
// Owning the account is not enough.
func CanChangeStatus(actor, target models.User) error {
	return RequireTier(actor, managingTier(target))
}

// CanAssignRole checks the role management rules: changing roles needs the
// elevated tier, while granting Admin or touching an Admin needs Admin.
func CanAssignRole(actor, target models.User, newRole models.Role) error {
	minTier := managingTier(target)
	if newRole == models.RoleAdmin {
		minTier = TierAdmin
	}
	return RequireTier(actor, minTier)
}
