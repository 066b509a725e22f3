package middleware

import (
	"context"
	"errors"
	"net/http"

	"stayhub/config"
	"stayhub/infras/jwt"
	"stayhub/infras/otel"
	"stayhub/permissions"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"stayhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type internalCallerKey struct{}

// Auth authenticates the caller of a request.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role authorizes the authenticated caller against permissions.json.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// APIKey lets internal services in with the X-API-Key header. They act as an admin, so every
// owner's room types are in scope. Requests without the header go on to JWT authentication.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, internalCallerKey{}, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextInternalService)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Auth validates the bearer access token and stores the caller's identity in the context.
// Public routes and internal callers pass through untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path := routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if isInternal(ctx) || m.isPublic(request.Method, path) {
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			message := "Invalid authorization header format"
			if errors.Is(err, jwt.ErrMissingHeader) {
				message = "Missing authorization header"
			}

			reject(writer, scope, failure.Unauthorized(message))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("token_id", claims.TokenID).Msg("JWT claims missing user id or email")
			reject(writer, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		scope.SetAttribute("user.role", claims.Role)

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller's role against the roles listed for the route. Unlisted routes are
// open to any authenticated caller; a missing permissions document denies everything.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if m.permission == nil {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		if m.permission.Disabled || isInternal(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.Find(request.Method, routePattern(request))
		if permission.Public {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Roles,
				"reason":        "role_not_allowed",
			})
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *authRoleImpl) isPublic(method, path string) bool {
	return m.permission != nil && m.permission.Find(method, path).Public
}

func isInternal(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallerKey{}).(bool)

	return internal
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

// routePattern resolves the registered chi pattern for the request, e.g. /v1/rooms/{id}.
// The auth middlewares run before the versioned subrouter has matched, so the pattern is
// looked up from the root router.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
