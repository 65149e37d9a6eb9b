package middleware

import (
	"net/http"

	"farmlytic/internal/domain/entity"
	"farmlytic/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type RoleMiddleware struct {
	profileRepo repository.ProfileRepository
}

func NewRoleMiddleware(profileRepo repository.ProfileRepository) *RoleMiddleware {
	return &RoleMiddleware{
		profileRepo: profileRepo,
	}
}

// Require restricts a route group to callers holding one of the given
// roles. Must run after Authenticate.
func (m *RoleMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			profile, err := m.profileRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify role")
			}

			for _, role := range roles {
				if profile.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "Insufficient role for this action")
		}
	}
}
