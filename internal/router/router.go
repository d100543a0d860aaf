package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pharmanet/internal/auth"
	"pharmanet/internal/config"
	"pharmanet/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions *auth.SessionService,
	catalogHandler *handler.CatalogHandler,
	accountHandler *handler.AccountHandler,
) error {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = &CustomValidator{validator: validator.New()}

	renderer, err := NewTemplateRenderer(cfg.TemplateGlob)
	if err != nil {
		return err
	}
	e.Renderer = renderer

	e.Static("/static", cfg.StaticDir)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public pages
	e.GET("/", catalogHandler.Home)
	e.GET("/medicines", catalogHandler.List)
	e.GET("/medicine/:name", catalogHandler.Detail)
	e.GET("/suggest", catalogHandler.Suggest)

	e.GET("/create-account", accountHandler.ShowRegister)
	e.POST("/create-account", accountHandler.SubmitRegister)
	e.GET("/login", accountHandler.ShowLogin)
	e.POST("/login", accountHandler.SubmitLogin)
	e.GET("/logout", accountHandler.Logout)

	// Session-gated pages: a missing or invalid session cookie redirects to
	// the login form instead of rendering protected content.
	secured := e.Group("/dashboard", echojwt.WithConfig(echojwt.Config{
		SigningKey:  sessions.Secret(),
		TokenLookup: "cookie:" + auth.SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusSeeOther, "/login")
		},
	}))
	secured.GET("", accountHandler.Dashboard)

	return nil
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
