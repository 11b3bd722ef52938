package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role the shared-PIN gate mints today.
const RoleAdmin = "ADMIN"

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	StaffName string
	Role      string
	JTI       string
}

// AccessTokenClaims represents the typed JWT issued to the admin UI.
type AccessTokenClaims struct {
	StaffName string `json:"staff_name,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}
