package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/hr-portal-go/internal/domain/authz"
	"github.com/worklens/hr-portal-go/internal/domain/session"
	"github.com/worklens/hr-portal-go/internal/handler/http/response"
	"github.com/worklens/hr-portal-go/internal/pkg/routing"
)

type AuthzHandler interface {
	Evaluate(w http.ResponseWriter, r *http.Request)
}

type authzHandlerImpl struct {
	table        *routing.Table
	esignEnabled bool
}

func NewAuthzHandler(table *routing.Table, esignEnabled bool) AuthzHandler {
	return &authzHandlerImpl{
		table:        table,
		esignEnabled: esignEnabled,
	}
}

// evaluateResult is the probe payload. Resolved carries the rewritten
// internal path so clients can prefetch the module that will serve the page.
type evaluateResult struct {
	Path       string `json:"path"`
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Resolved   string `json:"resolved,omitempty"`
}

// Evaluate implements AuthzHandler. It answers the same decision the
// navigation middleware would make for ?path=, without performing it.
func (h *authzHandlerImpl) Evaluate(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		response.BadRequest(w, "Query parameter 'path' is required", nil)
		return
	}

	var sess session.Session
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		sess = session.FromClaims(claims)
	}

	decision := authz.Evaluate(authz.Input{
		Path:            path,
		Roles:           sess.Roles,
		PasswordChanged: sess.PasswordChanged,
		ESignEnabled:    h.esignEnabled,
	})

	result := evaluateResult{
		Path:       path,
		Allowed:    decision.Allowed,
		RedirectTo: decision.RedirectTo,
	}
	if decision.Allowed {
		result.Resolved = h.table.Rewrite(path)
	}

	response.Success(w, result)
}
