package middleware

import (
	"net/http"

	"github.com/blackriis/nobicha-sub001/internal/domain/auth"
	"github.com/blackriis/nobicha-sub001/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects any request whose bearer token failed verification or
// does not carry the claims this API issues: type "access" and a non-empty
// employee_id. jwtauth.Verifier must run earlier in the chain.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if kind, _ := claims["type"].(string); kind != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if employeeID, _ := claims["employee_id"].(string); employeeID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly gates a route group on the is_admin claim. It assumes
// AuthRequired already ran, so a missing claim map is treated as a plain
// privilege failure rather than a broken token.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if isAdmin, _ := claims["is_admin"].(bool); !isAdmin {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
