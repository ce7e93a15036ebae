package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/voltride/rental-core/docs"
	"github.com/voltride/rental-core/internal/api/handler"
	"github.com/voltride/rental-core/internal/api/middleware"
	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
	"github.com/voltride/rental-core/internal/pkg/validation"
)

// Dependencies holds everything the router wires into handlers.
type Dependencies struct {
	Accounts    ports.AccountService
	Renters     ports.RenterService
	Memberships ports.MembershipService
	Rentals     ports.RentalService
	Geofence    ports.GeofenceService
	Checks      []handler.Check
	JWTSecret   string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddleware("rental"))

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Checks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- v1, bearer token required ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	staff := middleware.RBAC(domain.RoleStaff, domain.RoleManager, domain.RoleAdmin, domain.RoleTechnician)
	managers := middleware.RBAC(domain.RoleManager, domain.RoleAdmin)
	admins := middleware.RBAC(domain.RoleAdmin)

	accounts := handler.NewAccountHandler(deps.Accounts)
	v1.POST("/accounts", accounts.Create, admins)
	v1.GET("/accounts/:id", accounts.Get, staff)
	v1.PUT("/accounts/:id", accounts.Update, admins)

	renters := handler.NewRenterHandler(deps.Renters)
	v1.POST("/renters", renters.Create)
	v1.GET("/renters/:id", renters.Get)
	v1.PUT("/renters/:id", renters.Update)

	memberships := handler.NewMembershipHandler(deps.Memberships)
	v1.POST("/memberships", memberships.Create, managers)
	v1.GET("/memberships/tier", memberships.Tier)
	v1.GET("/memberships/drafts", memberships.ListDrafts, managers)
	v1.POST("/memberships/drafts", memberships.SaveDraft, managers)
	v1.GET("/memberships/:id", memberships.Get)
	v1.PUT("/memberships/:id", memberships.Update, managers)
	v1.POST("/memberships/:id/renters", memberships.AddRenter)

	rentals := handler.NewRentalHandler(deps.Rentals, nil)
	v1.POST("/rentals/validate", rentals.Validate)
	v1.POST("/rentals/quote", rentals.Quote)

	stations := handler.NewStationHandler(deps.Geofence)
	v1.GET("/stations/nearby", stations.Nearby)

	return e
}

// requestLogger writes one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
