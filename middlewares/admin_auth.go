package middlewares

import (
	"crypto/subtle"
	"net/http"

	"digitalagency/apperrors"
	"digitalagency/utils"
)

const adminTokenHeader = "x-admin-token"

// AdminAuth guards admin routes with a shared token carried in the
// x-admin-token header. An absent header is 401, a mismatch is 403.
func AdminAuth(token string, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" {
				utils.HandleError(w, &apperrors.AuthError{Missing: true}, production)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				utils.HandleError(w, &apperrors.AuthError{}, production)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
