// Package entity contains the core business objects of the project.
package entity

// Role represents the account-level role a user holds in the system.
type Role string

const (
	// RoleAthlete indicates a regular athlete account. This is the default role.
	RoleAthlete Role = "athlete"
	// RoleCoach indicates a coach account.
	RoleCoach Role = "coach"
	// RoleParent indicates a parent account observing athletes.
	RoleParent Role = "parent"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAthlete, RoleCoach, RoleParent, RoleAdmin:
		return true
	default:
		return false
	}
}

// TeamRole represents the role a user holds within a single team.
type TeamRole string

const (
	// TeamRoleMember indicates a regular team member. This is the default role.
	TeamRoleMember TeamRole = "member"
	// TeamRoleCoach indicates a coach of the team.
	TeamRoleCoach TeamRole = "coach"
	// TeamRoleAdmin indicates an administrator of the team.
	TeamRoleAdmin TeamRole = "admin"
)

// String returns the string representation of the TeamRole.
func (r TeamRole) String() string {
	return string(r)
}

// IsValid checks if the TeamRole is a valid value.
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleMember, TeamRoleCoach, TeamRoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageTeamContent reports whether the role may create or modify
// team-level workout and assessment templates.
func (r TeamRole) CanManageTeamContent() bool {
	return r == TeamRoleCoach || r == TeamRoleAdmin
}
