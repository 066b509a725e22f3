package middleware

import (
	"net/http"

	"stayhub/shared/constant"
	"stayhub/shared/validator"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// ValidID answers 400 when the {id} route parameter is not a UUID. Use it inline with chi's With
// so the route is already matched.
func ValidID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := validator.ValidateID(chi.URLParam(r, constant.RequestParamID)); err != nil {
			response.WithError(w, err)

			return
		}

		next.ServeHTTP(w, r)
	})
}
