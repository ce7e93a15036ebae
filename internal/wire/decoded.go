// Package wire converts between the JSON/BSON documents exchanged with the
// remote store and the domain entities.
//
// Decoding never fails on a missing or unparseable field. Each such field
// takes an explicit default and is recorded in Decoded.Defaults so callers
// can log or count data-quality problems instead of losing them.
package wire

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/pkg/metrics"
)

const (
	ReasonMissing     = "missing"
	ReasonUnparseable = "unparseable"
	ReasonUnknownRole = "unknown_role"
	ReasonOutOfRange  = "out_of_range"
)

// FieldDefault records that a field was absent or invalid and a default was
// used in its place.
type FieldDefault struct {
	Field  string
	Reason string
	Raw    string
}

// Decoded is the result of mapping a wire document to an entity.
type Decoded[E domain.Entity[E]] struct {
	Entity   E
	Defaults []FieldDefault
}

// Clean reports whether every field was present and valid.
func (d Decoded[E]) Clean() bool { return len(d.Defaults) == 0 }

// Report logs each defaulted field at warn level and counts it.
func (d Decoded[E]) Report(log zerolog.Logger, entity string) {
	for _, fd := range d.Defaults {
		metrics.WireDefaultedFieldsTotal.WithLabelValues(entity, fd.Field).Inc()
		log.Warn().
			Str("entity", entity).
			Str("id", d.Entity.EntityID()).
			Str("field", fd.Field).
			Str("reason", fd.Reason).
			Msg("wire field defaulted")
	}
}

// timeLayouts are tried in order when parsing wire timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func formatTime(t time.Time) *string {
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// fields applies per-field defaults and collects a FieldDefault for each.
type fields struct {
	now      time.Time
	defaults []FieldDefault
}

func (f *fields) note(name, reason, raw string) {
	f.defaults = append(f.defaults, FieldDefault{Field: name, Reason: reason, Raw: raw})
}

func (f *fields) str(name string, v *string) string {
	if v == nil {
		f.note(name, ReasonMissing, "")
		return ""
	}
	return *v
}

func (f *fields) boolean(name string, v *bool) bool {
	if v == nil {
		f.note(name, ReasonMissing, "")
		return false
	}
	return *v
}

// count defaults to zero and rejects negatives.
func (f *fields) count(name string, v *int) int {
	switch {
	case v == nil:
		f.note(name, ReasonMissing, "")
		return 0
	case *v < 0:
		f.note(name, ReasonOutOfRange, strconv.Itoa(*v))
		return 0
	}
	return *v
}

// timestamp is a required time; missing or unparseable values become now.
func (f *fields) timestamp(name string, v *string) time.Time {
	if v == nil {
		f.note(name, ReasonMissing, "")
		return f.now
	}
	t, ok := parseTime(*v)
	if !ok {
		f.note(name, ReasonUnparseable, *v)
		return f.now
	}
	return t
}

// optionalTime is a nullable time; absence is not a default, garbage is.
func (f *fields) optionalTime(name string, v *string) *time.Time {
	if v == nil || *v == "" {
		return nil
	}
	t, ok := parseTime(*v)
	if !ok {
		f.note(name, ReasonUnparseable, *v)
		return nil
	}
	return &t
}

func ptr[T any](v T) *T { return &v }
