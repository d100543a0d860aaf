package handler

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"pharmanet/internal/auth"
	"pharmanet/internal/errors"
	"pharmanet/internal/service"
)

// AccountHandler handles registration, login, logout and the dashboard.
type AccountHandler struct {
	accounts service.AccountService
	sessions *auth.SessionService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accounts service.AccountService, sessions *auth.SessionService) *AccountHandler {
	return &AccountHandler{accounts: accounts, sessions: sessions}
}

// RegisterRequest represents the registration form.
type RegisterRequest struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Phone           string `form:"phone" validate:"required"`
	Address         string `form:"address" validate:"required"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ShowRegister renders the registration form.
func (h *AccountHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "create_account.html", nil)
}

// SubmitRegister processes the registration form. Validation failures
// re-render the form with a user-visible message; success redirects to login.
func (h *AccountHandler) SubmitRegister(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusBadRequest, "create_account.html", echo.Map{
			"Error": "please fill in all fields correctly",
		})
	}

	_, err := h.accounts.Register(c.Request().Context(), service.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrPasswordMismatch) || stderrors.Is(err, errors.ErrEmailTaken) {
			httpErr := errors.MapErrorToHTTP(err)
			return c.Render(httpErr.StatusCode, "create_account.html", echo.Map{
				"Error": httpErr.Message,
			})
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login form.
func (h *AccountHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// SubmitLogin authenticates the user and starts a session. Bad credentials
// re-render the form with a single undifferentiated message.
func (h *AccountHandler) SubmitLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", echo.Map{
			"Error": "email and password are required",
		})
	}

	user, err := h.accounts.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidCredentials) {
			return c.Render(http.StatusUnauthorized, "login.html", echo.Map{
				"Error": err.Error(),
			})
		}
		return err
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionExpiry),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Dashboard renders the authenticated profile view from the session claims.
// The display fields were copied into the session at login; no storage read
// happens here.
func (h *AccountHandler) Dashboard(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	claims, ok := token.Claims.(*auth.SessionClaims)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"FirstName": claims.FirstName,
		"LastName":  claims.LastName,
		"Email":     claims.Email,
		"Phone":     claims.Phone,
		"Address":   claims.Address,
	})
}

// Logout clears the session cookie and returns to the landing page.
func (h *AccountHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
