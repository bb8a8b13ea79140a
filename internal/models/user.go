package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleChef     Role = "chef"
	RoleRider    Role = "rider"
	RoleAdmin    Role = "admin"
)

// JWT claims structure
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	FullName string    `json:"fullname,omitempty"`
	jwt.RegisteredClaims
}
