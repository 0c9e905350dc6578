package dto

// BackendProfile is what the backend returns for the current user.
type BackendProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Situation string `json:"situation"`
}

// Profile is the storefront view: raw role/situation replaced by the parsed
// enumeration value plus its display label.
type Profile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	RoleLabel      string `json:"roleLabel"`
	Situation      string `json:"situation"`
	SituationLabel string `json:"situationLabel"`
}
