package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wishshop/wish-backend/internal/core/domain"
	"github.com/wishshop/wish-backend/internal/core/ports"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new user and returns a token for the fresh identity.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      200   {object}  signupResponse
// @Failure      400   {object}  failureResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: err.Error()})
	}

	token, user, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, failureResponse{Errors: domain.ErrUserExists.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, signupResponse{Success: true, Name: user.Name, Token: token})
}

// Login authenticates by email and password. Business failures answer 200
// with success=false and a specific message, matching the storefront
// contract: "Wrong email Id" for an unknown email, "wrong Password" for a
// credential mismatch.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  failureResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failureResponse{Errors: err.Error()})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailNotFound):
			return c.JSON(http.StatusOK, failureResponse{Errors: "Wrong email Id"})
		case errors.Is(err, domain.ErrWrongPassword):
			return c.JSON(http.StatusOK, failureResponse{Errors: "wrong Password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token})
}
