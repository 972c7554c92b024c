package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"washline/pkg/staff/service"
)

// StaffAuth verifies the staff identity headers on POS and admin routes
// and puts the resolved identity into the request context.
func StaffAuth(v service.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			code := c.Request().Header.Get("X-Staff-Code")
			pin := c.Request().Header.Get("X-Staff-Pin")
			res, err := v.Verify(code, pin)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			if !res.Success {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "staff verification failed"})
			}
			c.Set("staff_id", res.StaffID)
			c.Set("staff_name", res.StaffName)
			return next(c)
		}
	}
}
