package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/core/ports"
)

type StationHandler struct {
	service ports.GeofenceService
}

func NewStationHandler(service ports.GeofenceService) *StationHandler {
	return &StationHandler{service: service}
}

type nearbyQuery struct {
	Latitude  float64 `query:"latitude"`
	Longitude float64 `query:"longitude"`
	Radius    float64 `query:"radius"`
}

// Nearby handles GET /v1/stations/nearby. An out-of-range query answers 422
// with valid=false and the validation message.
//
// @Summary      Find stations around a point
// @Tags         stations
// @Produce      json
// @Security     BearerAuth
// @Param        latitude   query     number  true  "Latitude (-90..90)"
// @Param        longitude  query     number  true  "Longitude (-180..180)"
// @Param        radius     query     number  true  "Radius in meters (100..10000)"
// @Success      200        {object}  nearbyResponse
// @Failure      422        {object}  nearbyResponse
// @Router       /v1/stations/nearby [get]
func (h *StationHandler) Nearby(c echo.Context) error {
	var q nearbyQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "latitude, longitude and radius must be numbers")
	}

	res, err := h.service.Query(c.Request().Context(), ports.GeofenceQuery{
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		Radius:    q.Radius,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, toNearbyResponse(res))
}
