package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

const dateLayout = "2006-01-02"

// RentalHandler validates and prices rental intervals.
type RentalHandler struct {
	service ports.RentalService
	loc     *time.Location
}

// NewRentalHandler interprets date plus clock inputs in loc; nil means UTC.
func NewRentalHandler(service ports.RentalService, loc *time.Location) *RentalHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RentalHandler{service: service, loc: loc}
}

// Validate handles POST /v1/rentals/validate. A rejected interval is a 200
// with is_valid=false.
//
// @Summary      Validate a rental interval
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rentalRequest  true  "Interval"
// @Success      200   {object}  validationResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/rentals/validate [post]
func (h *RentalHandler) Validate(c echo.Context) error {
	start, end, err := h.interval(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toValidationResponse(h.service.Validate(start, end)))
}

// Quote handles POST /v1/rentals/quote.
//
// @Summary      Price a rental interval
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      rentalRequest  true  "Interval and optional membership"
// @Success      200   {object}  quoteResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/rentals/quote [post]
func (h *RentalHandler) Quote(c echo.Context) error {
	var req rentalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	start, end, err := h.resolve(req)
	if err != nil {
		return err
	}

	res, err := h.service.Quote(c.Request().Context(), ports.QuoteInput{
		Start:        start,
		End:          end,
		MembershipID: req.MembershipID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponse(res))
}

func (h *RentalHandler) interval(c echo.Context) (time.Time, time.Time, error) {
	var req rentalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return h.resolve(req)
}

func (h *RentalHandler) resolve(req rentalRequest) (time.Time, time.Time, error) {
	start, err := h.instant("start", req.Start, req.StartDate, req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := h.instant("end", req.End, req.EndDate, req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// instant prefers an explicit timestamp; otherwise it combines a date with a
// clock string such as "9:30 PM" or "9h30 tối".
func (h *RentalHandler) instant(side string, ts *time.Time, date, clock string) (time.Time, error) {
	if ts != nil {
		return *ts, nil
	}
	if date == "" {
		return time.Time{}, echo.NewHTTPError(http.StatusUnprocessableEntity, side+" is required")
	}

	day, err := time.ParseInLocation(dateLayout, date, h.loc)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusUnprocessableEntity, side+"_date must be YYYY-MM-DD")
	}
	if clock == "" {
		return day, nil
	}

	ct, err := domain.ParseTime(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s_time: %w", side, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), ct.Hour, ct.Minute, 0, 0, h.loc), nil
}
