package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	authmw "github.com/Skotchmaster/doggee/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/doggee/internal/middleware/logging"
)

type Deps struct {
	Logger      *slog.Logger
	Gate        *authmw.Gate
	AuthHandler *AuthHTTP
	UserHandler *UserHTTP
	DogHandler  *DogHTTP

	CORSOrigins []string
	// AuthRateLimit is requests per second per client IP on /auth. Zero disables it.
	AuthRateLimit float64
}

// New builds the echo instance with the full middleware stack and routes.
func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e.Use(loggingmw.RequestLogger(logger))

	if len(d.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	e.Use(d.Gate.Middleware())

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api-docs", APIDocs)

	auth := e.Group("/auth")
	if d.AuthRateLimit > 0 {
		auth.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(d.AuthRateLimit))))
	}
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/refresh-token", d.AuthHandler.Refresh)

	users := e.Group("/users")
	users.GET("/:id/profile", d.UserHandler.GetProfile)
	users.PUT("/:id/profile", d.UserHandler.UpdateProfile)
	users.GET("/:id/dogs", d.DogHandler.ListDogs)
	users.POST("/:id/dogs", d.DogHandler.CreateDog)
	users.PUT("/:id/dogs/:dogId", d.DogHandler.UpdateDog)
	users.DELETE("/:id/dogs/:dogId", d.DogHandler.DeleteDog)

	e.GET("/breeds", Breeds)
}
