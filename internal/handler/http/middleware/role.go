package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talenthub-hr/hrms-backend-go/internal/domain/user"
	"github.com/talenthub-hr/hrms-backend-go/internal/handler/http/response"
)

// Identity is the caller's JWT claim set as handlers consume it. An HR
// account created before its employee record has no EmployeeID.
type Identity struct {
	UserID     string
	Email      string
	EmployeeID string
	Role       user.Role
}

func (i Identity) IsHR() bool {
	return i.Role == user.RoleHR
}

// IdentityFromRequest extracts the caller's identity from the verified
// token. Routes behind AuthRequired always carry one.
func IdentityFromRequest(r *http.Request) (Identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Identity{}, false
	}

	var id Identity
	if v, ok := claims["user_id"].(string); ok {
		id.UserID = v
	}
	if v, ok := claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := claims["employee_id"].(string); ok {
		id.EmployeeID = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = user.Role(v)
	}
	if id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// RequireHR requires the HR role
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromRequest(r)
		if !ok || !id.IsHR() {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployeeProfile requires a linked employee record; check-in and
// leave application act on the caller's own record
func RequireEmployeeProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromRequest(r)
		if !ok || id.EmployeeID == "" {
			response.HandleError(w, user.ErrEmployeeOnlyAction)
			return
		}

		next.ServeHTTP(w, r)
	})
}
