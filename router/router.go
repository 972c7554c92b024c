package router

import (
	"github.com/labstack/echo/v4"
)

// New wires every route. Controllers are passed as the minimal
// interfaces the router actually calls.
func New(
	e *echo.Echo,
	staffAuth echo.MiddlewareFunc,
	orderCtrl interface {
		Place(echo.Context) error
		Quote(echo.Context) error
		Track(echo.Context) error
		List(echo.Context) error
		WalkIn(echo.Context) error
		CheckIn(echo.Context) error
		Advance(echo.Context) error
		Notify(echo.Context) error
	},
	staffCtrl interface{ Verify(echo.Context) error },
	payCtrl interface{ Pay(echo.Context) error },
	attCtrl interface {
		ClockIn(echo.Context) error
		ClockOut(echo.Context) error
		List(echo.Context) error
	},
	reportCtrl interface{ Summary(echo.Context) error },
	exportCtrl interface{ Orders(echo.Context) error },
	branchCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	voucherCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Deactivate(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// Customer-facing
	e.POST("/orders", orderCtrl.Place)
	e.POST("/quotes", orderCtrl.Quote)
	e.GET("/orders/track", orderCtrl.Track)

	// Staff verification stands alone so the POS can probe identity
	// before offering gated actions.
	e.POST("/staff/verify", staffCtrl.Verify)

	pos := e.Group("/pos", staffAuth)
	pos.GET("/orders", orderCtrl.List)
	pos.POST("/orders", orderCtrl.WalkIn)
	pos.POST("/orders/:id/checkin", orderCtrl.CheckIn)
	pos.POST("/orders/:id/advance", orderCtrl.Advance)
	pos.POST("/orders/:id/pay", payCtrl.Pay)
	pos.POST("/orders/:id/notify", orderCtrl.Notify)
	pos.POST("/attendance/clock-in", attCtrl.ClockIn)
	pos.POST("/attendance/clock-out", attCtrl.ClockOut)
	pos.GET("/attendance", attCtrl.List)

	admin := e.Group("/admin", staffAuth)
	admin.GET("/reports/summary", reportCtrl.Summary)
	admin.GET("/orders/export", exportCtrl.Orders)
	admin.GET("/branches", branchCtrl.List)
	admin.POST("/branches", branchCtrl.Create)
	admin.GET("/vouchers", voucherCtrl.List)
	admin.POST("/vouchers", voucherCtrl.Create)
	admin.DELETE("/vouchers/:code", voucherCtrl.Deactivate)

	return e
}
