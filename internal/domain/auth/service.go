package auth

import "context"

// Service defines authentication business logic
type Service interface {
	// SignUp registers a user account; an HR sign-up with company and
	// name details also bootstraps the HR's own employee record
	SignUp(ctx context.Context, req SignUpRequest) (AuthResponse, error)

	// SignIn authenticates by email and password and issues a JWT
	SignIn(ctx context.Context, req SignInRequest) (AuthResponse, error)

	// Me resolves the authenticated user from JWT claims
	Me(ctx context.Context, userID string) (UserResponse, error)
}
