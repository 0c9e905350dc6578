package dto

// LoginResponse is the slice of the backend auth response the storefront
// needs to set the token cookie.
type LoginResponse struct {
	Token string `json:"token"`
}
