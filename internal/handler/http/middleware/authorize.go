package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/hr-portal-go/internal/domain/authz"
	"github.com/worklens/hr-portal-go/internal/domain/session"
	"github.com/worklens/hr-portal-go/internal/pkg/routing"
)

// Authorize gates page navigations against the role allow-list. Paths outside
// the matcher pass straight through; matched paths are evaluated and either
// served or answered with a 303 redirect to the decision's target.
//
// A request with no readable claims still goes through evaluation with an
// empty session, which fails closed onto the password-reset redirect.
func Authorize(matcher *routing.Matcher, esignEnabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if !matcher.Matches(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			var sess session.Session
			if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
				sess = session.FromClaims(claims)
			}

			decision := authz.Evaluate(authz.Input{
				Path:            r.URL.Path,
				Roles:           sess.Roles,
				PasswordChanged: sess.PasswordChanged,
				ESignEnabled:    esignEnabled,
			})

			if !decision.Allowed {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
