package profile

import "strings"

// Role is the profile role as an exhaustive enumeration. Values the backend
// sends that we do not recognize map to RoleUnknown instead of falling through
// string heuristics.
type Role string

const (
	RoleTutor        Role = "tutor"
	RoleVeterinarian Role = "veterinarian"
	RoleAdmin        Role = "admin"
	RoleUnknown      Role = "unknown"
)

func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTutor:
		return RoleTutor
	case RoleVeterinarian:
		return RoleVeterinarian
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Label is the display name shown on the profile page.
func (r Role) Label() string {
	switch r {
	case RoleTutor:
		return "Tutor(a)"
	case RoleVeterinarian:
		return "Veterinário(a)"
	case RoleAdmin:
		return "Administrador(a)"
	default:
		return "Desconhecido"
	}
}

// Situation is the account situation enumeration.
type Situation string

const (
	SituationActive   Situation = "active"
	SituationPending  Situation = "pending"
	SituationInactive Situation = "inactive"
	SituationUnknown  Situation = "unknown"
)

func ParseSituation(s string) Situation {
	switch Situation(strings.ToLower(strings.TrimSpace(s))) {
	case SituationActive:
		return SituationActive
	case SituationPending:
		return SituationPending
	case SituationInactive:
		return SituationInactive
	default:
		return SituationUnknown
	}
}

func (s Situation) Label() string {
	switch s {
	case SituationActive:
		return "Ativo"
	case SituationPending:
		return "Pendente"
	case SituationInactive:
		return "Inativo"
	default:
		return "Desconhecido"
	}
}
