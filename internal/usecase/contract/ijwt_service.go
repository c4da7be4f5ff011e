package contract

// IJWTService issues and validates admin session tokens.
type IJWTService interface {
	GenerateAdminToken() (string, error)
	// ValidateToken returns the role claim of a valid token.
	ValidateToken(token string) (string, error)
}
