package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

// RenterHandler serves renter profiles. Renters may only read and edit their
// own profile; any staff role may read all of them.
type RenterHandler struct {
	service ports.RenterService
}

func NewRenterHandler(service ports.RenterService) *RenterHandler {
	return &RenterHandler{service: service}
}

// Create handles POST /v1/renters. A renter registering themselves gets the
// token subject as their id.
//
// @Summary      Create a renter profile
// @Tags         renters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      renterRequest  true  "Renter"
// @Success      201   {object}  renterResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/renters [post]
func (h *RenterHandler) Create(c echo.Context) error {
	subject, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req renterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if role == domain.RoleRenter {
		if req.RenterID != "" && req.RenterID != subject {
			return domain.ErrForbidden
		}
		req.RenterID = subject
	}

	r, err := h.service.Create(c.Request().Context(), toRenterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRenterResponse(r))
}

// Get handles GET /v1/renters/:id.
//
// @Summary      Get a renter profile
// @Tags         renters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Renter ID"
// @Success      200  {object}  renterResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/renters/{id} [get]
func (h *RenterHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := ownerOrStaff(c, id); err != nil {
		return err
	}

	r, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRenterResponse(r))
}

// Update handles PUT /v1/renters/:id. The id in the path wins over any id
// in the body.
//
// @Summary      Replace a renter profile
// @Tags         renters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Renter ID"
// @Param        body  body      renterRequest  true  "Renter"
// @Success      200   {object}  renterResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/renters/{id} [put]
func (h *RenterHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if err := ownerOrStaff(c, id); err != nil {
		return err
	}

	var req renterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.RenterID = id

	r, err := h.service.Update(c.Request().Context(), toRenterInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRenterResponse(r))
}
