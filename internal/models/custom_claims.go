package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	Scope     string `json:"scope,omitempty"`
	TokenType string `json:"token_type"`
}
