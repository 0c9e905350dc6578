package profile

import "testing"

func TestParseRole(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Role
	}{
		"exact":           {"tutor", RoleTutor},
		"case and spaces": {"  Veterinarian ", RoleVeterinarian},
		"admin":           {"ADMIN", RoleAdmin},
		"unrecognized":    {"superuser", RoleUnknown},
		"empty":           {"", RoleUnknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseRole(tc.in); got != tc.want {
				t.Fatalf("ParseRole(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRoleLabel(t *testing.T) {
	if RoleVeterinarian.Label() != "Veterinário(a)" {
		t.Fatalf("unexpected label: %q", RoleVeterinarian.Label())
	}
	if RoleUnknown.Label() != "Desconhecido" {
		t.Fatalf("unexpected label: %q", RoleUnknown.Label())
	}
	// Unparsed garbage behaves like unknown.
	if Role("whatever").Label() != "Desconhecido" {
		t.Fatalf("unexpected label for garbage role")
	}
}

func TestParseSituation(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Situation
	}{
		"active":       {"active", SituationActive},
		"pending":      {"Pending", SituationPending},
		"inactive":     {"INACTIVE", SituationInactive},
		"unrecognized": {"banned?", SituationUnknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseSituation(tc.in); got != tc.want {
				t.Fatalf("ParseSituation(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSituationLabel(t *testing.T) {
	if SituationActive.Label() != "Ativo" {
		t.Fatalf("unexpected label: %q", SituationActive.Label())
	}
	if SituationUnknown.Label() != "Desconhecido" {
		t.Fatalf("unexpected label: %q", SituationUnknown.Label())
	}
}
