package domain

import (
	"errors"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want ClockTime
	}{
		{"9:30 PM", ClockTime{21, 30}},
		{"9:30 pm", ClockTime{21, 30}},
		{"10:00pm", ClockTime{22, 0}},
		{"12 AM", ClockTime{0, 0}},
		{"12:15 a.m.", ClockTime{0, 15}},
		{"12 PM", ClockTime{12, 0}},
		{"1 p.m.", ClockTime{13, 0}},
		{"7:15 CH", ClockTime{19, 15}},
		{"6h45 sáng", ClockTime{6, 45}},
		{"8.05 SA", ClockTime{8, 5}},
		{"9 tối", ClockTime{21, 0}},
		{"  11:59 PM  ", ClockTime{23, 59}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTime(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseTime_Rejects(t *testing.T) {
	for _, in := range []string{"", "noon", "9:30", "13 PM", "0 AM", "9:75 PM", "9:30 XM", "25:00 PM"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTime(in)
			if !errors.Is(err, ErrUnrecognizedTime) {
				t.Fatalf("expected ErrUnrecognizedTime, got %v", err)
			}
		})
	}
}

func TestClockTime_String(t *testing.T) {
	if got := (ClockTime{Hour: 7, Minute: 5}).String(); got != "07:05" {
		t.Fatalf("expected 07:05, got %s", got)
	}
}
