package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)
