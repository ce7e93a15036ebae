package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/core/ports"
)

type MembershipHandler struct {
	service ports.MembershipService
}

func NewMembershipHandler(service ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// Create handles POST /v1/memberships.
//
// @Summary      Create a membership tier
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      membershipRequest  true  "Membership"
// @Success      201   {object}  membershipResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/memberships [post]
func (h *MembershipHandler) Create(c echo.Context) error {
	var req membershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.Create(c.Request().Context(), toMembershipInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMembershipResponse(m))
}

// Get handles GET /v1/memberships/:id.
//
// @Summary      Get a membership tier
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Membership ID"
// @Success      200  {object}  membershipResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/memberships/{id} [get]
func (h *MembershipHandler) Get(c echo.Context) error {
	m, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMembershipResponse(m))
}

// Update handles PUT /v1/memberships/:id.
//
// @Summary      Replace a membership tier
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Membership ID"
// @Param        body  body      membershipRequest  true  "Membership"
// @Success      200   {object}  membershipResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/memberships/{id} [put]
func (h *MembershipHandler) Update(c echo.Context) error {
	var req membershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.MembershipID = c.Param("id")

	m, err := h.service.Update(c.Request().Context(), toMembershipInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMembershipResponse(m))
}

// AddRenter handles POST /v1/memberships/:id/renters.
//
// @Summary      Enrol a renter in a membership
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Membership ID"
// @Param        body  body      addRenterRequest  true  "Renter"
// @Success      200   {object}  membershipResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/memberships/{id}/renters [post]
func (h *MembershipHandler) AddRenter(c echo.Context) error {
	var req addRenterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := ownerOrStaff(c, req.RenterID); err != nil {
		return err
	}

	m, err := h.service.AddRenter(c.Request().Context(), c.Param("id"), req.RenterID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMembershipResponse(m))
}

// Tier handles GET /v1/memberships/tier?bookings=N.
//
// @Summary      Resolve the tier earned by a booking count
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        bookings  query     int  true  "Completed bookings"
// @Success      200       {object}  membershipResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/memberships/tier [get]
func (h *MembershipHandler) Tier(c echo.Context) error {
	bookings, err := strconv.Atoi(c.QueryParam("bookings"))
	if err != nil || bookings < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "bookings must be a non-negative integer")
	}

	m, err := h.service.TierFor(c.Request().Context(), bookings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMembershipResponse(m))
}

// SaveDraft handles POST /v1/memberships/drafts.
//
// @Summary      Save a membership draft locally
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      membershipRequest  true  "Membership"
// @Success      201   {object}  draftResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/memberships/drafts [post]
func (h *MembershipHandler) SaveDraft(c echo.Context) error {
	var req membershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	d, err := h.service.SaveDraft(c.Request().Context(), toMembershipInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDraftResponse(d))
}

// ListDrafts handles GET /v1/memberships/drafts.
//
// @Summary      List membership drafts
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  draftResponse
// @Router       /v1/memberships/drafts [get]
func (h *MembershipHandler) ListDrafts(c echo.Context) error {
	drafts, err := h.service.ListDrafts(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]draftResponse, 0, len(drafts))
	for _, d := range drafts {
		resp = append(resp, toDraftResponse(d))
	}
	return c.JSON(http.StatusOK, resp)
}
