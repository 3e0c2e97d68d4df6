package models

import (
	"regexp"
	"strconv"
	"strings"
)

// Role is the closed set of dashboard roles. The legacy data stored roles as
// free-text preference strings ("clinic 2", "pet-boarding"); ParseRole maps
// those onto this enum exactly once, when the session profile is resolved.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleClinic1   Role = "clinic1"
	RoleClinic2   Role = "clinic2"
	RoleClinic3   Role = "clinic3"
	RoleBoarding  Role = "pet-boarding"
	RoleBoarding2 Role = "pet-boarding-2"
	RoleTraining  Role = "pet-training"
	RoleAdmin     Role = "admin"
)

// clinicRolePattern matches the legacy "clinic N" role convention.
var clinicRolePattern = regexp.MustCompile(`(?i)clinic[\s-]*(\d+)`)

// ParseRole resolves a stored role string to a Role. Unknown or empty values
// resolve to RoleOwner, which grants owner-level access only.
func ParseRole(raw string) Role {
	switch normalized := strings.ToLower(strings.TrimSpace(raw)); normalized {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleBoarding), "boarding":
		return RoleBoarding
	case string(RoleBoarding2), "boarding2":
		return RoleBoarding2
	case string(RoleTraining), "training":
		return RoleTraining
	case string(RoleOwner), "":
		return RoleOwner
	default:
		if m := clinicRolePattern.FindStringSubmatch(normalized); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				switch n {
				case 1:
					return RoleClinic1
				case 2:
					return RoleClinic2
				case 3:
					return RoleClinic3
				}
			}
		}
		return RoleOwner
	}
}

// CanonicalRole resolves a role string like ParseRole, but reports false for
// values that do not name any role. ParseRole's owner fallback is fine for
// session resolution; assignment paths reject unknown values instead.
func CanonicalRole(raw string) (Role, bool) {
	role := ParseRole(raw)
	if role == RoleOwner {
		normalized := strings.ToLower(strings.TrimSpace(raw))
		if normalized != string(RoleOwner) && normalized != "" {
			return "", false
		}
	}
	return role, true
}

// IsStaff reports whether the role belongs to a service dashboard
// (clinic, boarding or training) rather than a pet owner.
func (r Role) IsStaff() bool {
	switch r {
	case RoleClinic1, RoleClinic2, RoleClinic3, RoleBoarding, RoleBoarding2, RoleTraining, RoleAdmin:
		return true
	}
	return false
}

// Clinic returns the clinic number for clinic roles, or 0 when the role is
// not clinic-scoped.
func (r Role) Clinic() int {
	switch r {
	case RoleClinic1:
		return 1
	case RoleClinic2:
		return 2
	case RoleClinic3:
		return 3
	}
	return 0
}

// ServiceTags returns the services a staff role is responsible for. Admin
// sees everything, so it returns nil (no filter), as does RoleOwner, whose
// scoping is by owner id rather than service.
func (r Role) ServiceTags() []Service {
	switch r {
	case RoleClinic1, RoleClinic2, RoleClinic3:
		return []Service{ServiceGrooming, ServiceVeterinary}
	case RoleBoarding, RoleBoarding2:
		return []Service{ServiceBoarding}
	case RoleTraining:
		return []Service{ServiceTraining}
	}
	return nil
}
