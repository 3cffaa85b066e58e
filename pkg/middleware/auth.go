package middleware

import (
	"net/http"
	"strings"

	"elaundry/internal/data/repository"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

// RouteRule maps a request shape to the roles allowed to reach it. An empty
// Roles slice means any authenticated session passes. Method "" matches all
// methods. Rules are checked in order, first match wins.
type RouteRule struct {
	Method string
	Prefix string
	Roles  []string
}

// RoutePolicy is the single authorization table consulted by Authorize.
// Per-screen role checks live here instead of being duplicated in handlers.
type RoutePolicy []RouteRule

func (p RoutePolicy) match(method, path string) (RouteRule, bool) {
	for _, rule := range p {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return RouteRule{}, false
}

// Authorize is the route guard: it validates the bearer session token,
// refuses sessions without a user id, injects session fields into the
// request context, and enforces the role policy in one place.
func Authorize(sessions repository.SessionRepository, policy RoutePolicy, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessions.Find(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", token),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil || session.UserID == "" {
				logger.Warn("Invalid or expired session", zap.String("token", token))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			if rule, ok := policy.match(r.Method, r.URL.Path); ok && len(rule.Roles) > 0 {
				if !roleAllowed(session.Role, rule.Roles) {
					logger.Warn("Role not allowed for route",
						zap.String("user_id", session.UserID),
						zap.String("role", session.Role),
						zap.String("path", r.URL.Path))
					utils.ResponseForbidden(w, "Access denied for this role")
					return
				}
			}

			ctx := utils.SetSessionContext(r.Context(), session.UserID, session.ShopID, session.Role)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
