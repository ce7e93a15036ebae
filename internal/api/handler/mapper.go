package handler

import (
	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

// --- Request → Service input ---

func toCreateAccountInput(req createAccountRequest) ports.CreateAccountInput {
	return ports.CreateAccountInput{
		ID:       req.AccountID,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
	}
}

func toUpdateAccountInput(id string, req updateAccountRequest) ports.UpdateAccountInput {
	return ports.UpdateAccountInput{
		ID:       id,
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		FullName: req.FullName,
		IsActive: req.IsActive,
	}
}

func toRenterInput(req renterRequest) ports.RenterInput {
	return ports.RenterInput{
		ID:          req.RenterID,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
		AvatarURL:   req.AvatarURL,
	}
}

func toMembershipInput(req membershipRequest) ports.MembershipInput {
	return ports.MembershipInput{
		ID:                   req.MembershipID,
		TierName:             req.TierName,
		MinBookings:          req.MinBookings,
		DiscountPercentage:   req.DiscountPercentage,
		FreeChargingPerMonth: req.FreeChargingPerMonth,
		Description:          req.Description,
		Renters:              req.Renters,
	}
}

// --- Domain → Response ---

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		AccountID: a.ID,
		Username:  a.Username,
		Role:      string(a.Role),
		FullName:  a.FullName,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		LastLogin: a.LastLogin,
	}
}

func toRenterResponse(r domain.Renter) renterResponse {
	return renterResponse{
		RenterID:    r.ID,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		DateOfBirth: r.DateOfBirth,
		AvatarURL:   r.AvatarURL,
	}
}

func toMembershipResponse(m domain.Membership) membershipResponse {
	renters := m.Renters
	if renters == nil {
		renters = []string{}
	}
	return membershipResponse{
		MembershipID:         m.ID,
		TierName:             m.TierName,
		MinBookings:          m.MinBookings,
		DiscountPercentage:   m.DiscountPercentage,
		FreeChargingPerMonth: m.FreeChargingPerMonth,
		Description:          m.Description,
		Renters:              renters,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
		DeletedAt:            m.DeletedAt,
		IsDeleted:            m.IsDeleted,
	}
}

func toDraftResponse(d ports.MembershipDraft) draftResponse {
	return draftResponse{
		ID:                   d.ID,
		TierName:             d.TierName,
		MinBookings:          d.MinBookings,
		DiscountPercentage:   d.DiscountPercentage,
		FreeChargingPerMonth: d.FreeChargingPerMonth,
		Description:          d.Description,
		Renters:              d.Renters,
	}
}

func toValidationResponse(v domain.DurationValidation) validationResponse {
	return validationResponse{
		IsValid:    v.IsValid,
		Reason:     string(v.Reason),
		Error:      v.Error,
		TotalHours: v.TotalHours,
	}
}

func toQuoteResponse(r ports.QuoteResult) quoteResponse {
	resp := quoteResponse{Validation: toValidationResponse(r.Validation)}
	if !r.Validation.IsValid {
		return resp
	}

	q := r.Quote
	resp.Duration = &durationResponse{
		Days:       q.Duration.Days,
		Hours:      q.Duration.Hours,
		TotalHours: q.Duration.TotalHours,
	}
	resp.Tiers = &tiersResponse{
		DiscountTier:    string(q.Tiers.DiscountTier),
		FullPeriods:     q.Tiers.FullPeriods,
		DiscountedHours: q.Tiers.DiscountedHours,
		RegularHours:    q.Tiers.RegularHours,
	}
	resp.TierDiscountPct = q.TierDiscountPct
	resp.MembershipDiscount = q.MembershipDiscount
	resp.RegularAmount = q.RegularAmount
	resp.DiscountedAmount = q.DiscountedAmount
	resp.Subtotal = q.Subtotal
	resp.Total = q.Total
	if r.Membership != nil {
		resp.MembershipID = r.Membership.ID
	}
	return resp
}

func toStationResponse(h ports.StationHit) stationResponse {
	return stationResponse{
		ID:             h.Station.ID,
		Name:           h.Station.Name,
		Latitude:       h.Station.Location.Lat,
		Longitude:      h.Station.Location.Lng,
		AvailableBikes: h.Station.AvailableBikes,
		DistanceMeters: h.DistanceMeters,
	}
}

func toNearbyResponse(r ports.GeofenceResult) nearbyResponse {
	resp := nearbyResponse{
		Valid:    r.Valid,
		Error:    r.Error,
		Stations: make([]stationResponse, 0, len(r.Stations)),
	}
	for _, h := range r.Stations {
		resp.Stations = append(resp.Stations, toStationResponse(h))
	}
	if r.Nearest != nil {
		n := toStationResponse(*r.Nearest)
		resp.Nearest = &n
	}
	return resp
}
