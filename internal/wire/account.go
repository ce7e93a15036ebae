package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// AccountModel is the wire form of an account.
type AccountModel struct {
	AccountID    *string `json:"account_id"    bson:"_id"`
	Username     *string `json:"username"      bson:"username"`
	PasswordHash *string `json:"password_hash" bson:"password_hash"`
	Role         *string `json:"role"          bson:"role"`
	FullName     *string `json:"full_name"     bson:"full_name"`
	IsActive     *bool   `json:"is_active"     bson:"is_active"`
	CreatedAt    *string `json:"created_at"    bson:"created_at"`
	LastLogin    *string `json:"last_login"    bson:"last_login"`
}

// FromAccount builds the wire model for a.
func FromAccount(a domain.Account) AccountModel {
	return AccountModel{
		AccountID:    ptr(a.ID),
		Username:     ptr(a.Username),
		PasswordHash: ptr(a.PasswordHash),
		Role:         ptr(string(a.Role)),
		FullName:     ptr(a.FullName),
		IsActive:     ptr(a.IsActive),
		CreatedAt:    formatTime(a.CreatedAt),
		LastLogin:    formatOptionalTime(a.LastLogin),
	}
}

// ToAccount maps m to an account, defaulting missing fields. An absent or
// unknown role always resolves to domain.RoleRenter.
func ToAccount(m AccountModel, now time.Time) Decoded[domain.Account] {
	f := &fields{now: now}
	a := domain.Account{
		ID:           f.str("account_id", m.AccountID),
		Username:     f.str("username", m.Username),
		PasswordHash: f.str("password_hash", m.PasswordHash),
		FullName:     f.str("full_name", m.FullName),
		IsActive:     f.boolean("is_active", m.IsActive),
		CreatedAt:    f.timestamp("created_at", m.CreatedAt),
		LastLogin:    f.optionalTime("last_login", m.LastLogin),
	}

	switch {
	case m.Role == nil:
		f.note("role", ReasonMissing, "")
		a.Role = domain.RoleRenter
	default:
		role, ok := domain.ParseRole(*m.Role)
		if !ok {
			f.note("role", ReasonUnknownRole, *m.Role)
		}
		a.Role = role
	}

	return Decoded[domain.Account]{Entity: a, Defaults: f.defaults}
}

// DecodeAccount parses a JSON account document. Only malformed JSON is an
// error; missing fields are defaulted.
func DecodeAccount(data []byte) (Decoded[domain.Account], error) {
	var m AccountModel
	if err := json.Unmarshal(data, &m); err != nil {
		return Decoded[domain.Account]{}, fmt.Errorf("decode account: %w", err)
	}
	return ToAccount(m, time.Now().UTC()), nil
}

// EncodeAccount marshals a to its JSON wire form.
func EncodeAccount(a domain.Account) ([]byte, error) {
	return json.Marshal(FromAccount(a))
}
