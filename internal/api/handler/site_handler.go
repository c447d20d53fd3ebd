package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SiteHandler serves the public welcome route and the access-granted
// responses behind the auth gates. The gates themselves live in the
// middleware package; by the time these handlers run, access has
// already been decided.
type SiteHandler struct{}

func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

type messageResponse struct {
	Message string `json:"message"`
}

// Home handles GET / — public, no authentication.
func (h *SiteHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome to the API"})
}

// BasicProtected handles GET /basic-protected behind the Basic Auth gate.
//
// @Summary      Basic Auth protected resource
// @Tags         protected
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /basic-protected [get]
func (h *SiteHandler) BasicProtected(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Basic Auth: Access Granted"})
}

// JWTProtected handles GET /jwt-protected behind the token gate.
//
// @Summary      JWT protected resource
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /jwt-protected [get]
func (h *SiteHandler) JWTProtected(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "JWT Auth: Access Granted"})
}

// AdminOnly handles GET /admin-only behind the token gate plus the
// admin role check.
//
// @Summary      Admin-only resource
// @Tags         protected
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin-only [get]
func (h *SiteHandler) AdminOnly(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Admin Access: Granted"})
}
