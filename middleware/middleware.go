package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"mixie/auth"
	"mixie/globals"
	"mixie/utils"

	"github.com/julienschmidt/httprouter"
)

// Authenticate resolves the Bearer token into an authenticated principal and
// stores its email in the request context. Requests without a valid principal
// never reach the wrapped handler.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := auth.ParseToken(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserEmailKey, claims.Email)
		next(w, r.WithContext(ctx), ps)
	}
}

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
