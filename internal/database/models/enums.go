package models

// TeamRole represents the role of a user within a team
type TeamRole string

const (
	TeamRoleMember TeamRole = "member"
	TeamRoleAdmin  TeamRole = "admin"
)

// PlayerType distinguishes regular roster players from substitutes
type PlayerType string

const (
	PlayerTypeTeamPlayer PlayerType = "TEAM_PLAYER"
	PlayerTypeSubstitute PlayerType = "SUBSTITUTE"
)

// AttackingDirection is the side of the rink a team attacks in a period
type AttackingDirection string

const (
	AttackingDirectionLeft  AttackingDirection = "left"
	AttackingDirectionRight AttackingDirection = "right"
)

// Opposite returns the flipped attacking direction
func (d AttackingDirection) Opposite() AttackingDirection {
	if d == AttackingDirectionLeft {
		return AttackingDirectionRight
	}
	return AttackingDirectionLeft
}

// Valid reports whether the direction is one of the known values
func (d AttackingDirection) Valid() bool {
	return d == AttackingDirectionLeft || d == AttackingDirectionRight
}
