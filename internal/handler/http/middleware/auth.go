package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-attendance-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-attendance-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid, unrevoked access token and
// stores the caller's auth.Identity in the request context. It must run after
// jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != jwt.TokenTypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			identity, ok := identityFromClaims(claims)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}

func identityFromClaims(claims map[string]interface{}) (auth.Identity, bool) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Identity{}, false
	}

	identity := auth.Identity{UserID: userID}
	identity.Email, _ = claims["email"].(string)
	if v, ok := claims["employee_id"].(string); ok && v != "" {
		identity.EmployeeID = &v
	}
	if v, ok := claims["department_id"].(string); ok && v != "" {
		identity.DepartmentID = &v
	}

	// roles decode as []interface{} from a parsed token
	switch roles := claims["roles"].(type) {
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok {
				identity.Roles = append(identity.Roles, user.Role(s))
			}
		}
	case []string:
		for _, s := range roles {
			identity.Roles = append(identity.Roles, user.Role(s))
		}
	}
	return identity, true
}
