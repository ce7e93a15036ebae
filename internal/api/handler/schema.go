package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Accounts ---

type createAccountRequest struct {
	AccountID string `json:"account_id" validate:"omitempty,max=64"`
	Username  string `json:"username"   validate:"required,max=64"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"omitempty,oneof=renter staff manager admin technician"`
	FullName  string `json:"full_name"  validate:"max=128"`
}

type updateAccountRequest struct {
	Username string `json:"username"  validate:"required,max=64"`
	Password string `json:"password"  validate:"omitempty,min=8"`
	Role     string `json:"role"      validate:"required,oneof=renter staff manager admin technician"`
	FullName string `json:"full_name" validate:"max=128"`
	IsActive bool   `json:"is_active"`
}

// accountResponse never carries the password hash.
type accountResponse struct {
	AccountID string     `json:"account_id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// --- Renters ---

type renterRequest struct {
	RenterID    string    `json:"renter_id"     validate:"omitempty,max=64"`
	Email       string    `json:"email"         validate:"required,email"`
	Phone       string    `json:"phone"         validate:"required"`
	Address     string    `json:"address"       validate:"max=256"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	AvatarURL   *string   `json:"avatar_url"    validate:"omitempty,url"`
}

type renterResponse struct {
	RenterID    string    `json:"renter_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	DateOfBirth time.Time `json:"date_of_birth"`
	AvatarURL   *string   `json:"avatar_url"`
}

// --- Memberships ---

type membershipRequest struct {
	MembershipID         string   `json:"membership_id"           validate:"omitempty,max=64"`
	TierName             string   `json:"tier_name"               validate:"required"`
	MinBookings          int      `json:"min_bookings"            validate:"gte=0"`
	DiscountPercentage   float64  `json:"discount_percentage"     validate:"gte=0,lte=100"`
	FreeChargingPerMonth int      `json:"free_charging_per_month" validate:"gte=0"`
	Description          string   `json:"description"`
	Renters              []string `json:"renters"`
}

type addRenterRequest struct {
	RenterID string `json:"renter_id" validate:"required"`
}

type membershipResponse struct {
	MembershipID         string     `json:"membership_id"`
	TierName             string     `json:"tier_name"`
	MinBookings          int        `json:"min_bookings"`
	DiscountPercentage   float64    `json:"discount_percentage"`
	FreeChargingPerMonth int        `json:"free_charging_per_month"`
	Description          string     `json:"description"`
	Renters              []string   `json:"renters"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
	DeletedAt            *time.Time `json:"deleted_at"`
	IsDeleted            bool       `json:"is_deleted"`
}

type draftResponse struct {
	ID                   string   `json:"id"`
	TierName             string   `json:"tier_name"`
	MinBookings          int      `json:"min_bookings"`
	DiscountPercentage   float64  `json:"discount_percentage"`
	FreeChargingPerMonth int      `json:"free_charging_per_month"`
	Description          string   `json:"description"`
	Renters              []string `json:"renters,omitempty"`
}

// --- Rentals ---

// rentalRequest accepts either RFC 3339 timestamps (start/end) or a date
// plus a 12-hour clock string per side, as entered on the booking screen.
type rentalRequest struct {
	Start        *time.Time `json:"start"`
	End          *time.Time `json:"end"`
	StartDate    string     `json:"start_date"    validate:"omitempty,datetime=2006-01-02"`
	StartTime    string     `json:"start_time"`
	EndDate      string     `json:"end_date"      validate:"omitempty,datetime=2006-01-02"`
	EndTime      string     `json:"end_time"`
	MembershipID string     `json:"membership_id"`
}

type validationResponse struct {
	IsValid    bool    `json:"is_valid"`
	Reason     string  `json:"reason,omitempty"`
	Error      string  `json:"error,omitempty"`
	TotalHours float64 `json:"total_hours"`
}

type durationResponse struct {
	Days       int     `json:"days"`
	Hours      int     `json:"hours"`
	TotalHours float64 `json:"total_hours"`
}

type tiersResponse struct {
	DiscountTier    string  `json:"discount_tier"`
	FullPeriods     int     `json:"full_periods"`
	DiscountedHours float64 `json:"discounted_hours"`
	RegularHours    float64 `json:"regular_hours"`
}

type quoteResponse struct {
	Validation         validationResponse `json:"validation"`
	Duration           *durationResponse  `json:"duration,omitempty"`
	Tiers              *tiersResponse     `json:"tiers,omitempty"`
	TierDiscountPct    float64            `json:"tier_discount_pct"`
	MembershipID       string             `json:"membership_id,omitempty"`
	MembershipDiscount float64            `json:"membership_discount"`
	RegularAmount      float64            `json:"regular_amount"`
	DiscountedAmount   float64            `json:"discounted_amount"`
	Subtotal           float64            `json:"subtotal"`
	Total              float64            `json:"total"`
}

// --- Stations ---

type stationResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AvailableBikes int     `json:"available_bikes"`
	DistanceMeters float64 `json:"distance_meters"`
}

type nearbyResponse struct {
	Valid    bool              `json:"valid"`
	Error    string            `json:"error,omitempty"`
	Stations []stationResponse `json:"stations"`
	Nearest  *stationResponse  `json:"nearest"`
}
