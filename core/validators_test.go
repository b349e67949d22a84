package core_test

import (
	"testing"

	"github.com/aliHasanov22/holb-st-m/core"
)

func TestIsClockTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "00:00", want: true},
		{in: "08:05", want: true},
		{in: "23:59", want: true},
		{in: "24:00", want: false},
		{in: "9:30", want: false}, // not zero-padded
		{in: "09:60", want: false},
		{in: "09-30", want: false},
		{in: "", want: false},
	}
	for _, tt := range tests {
		if got := core.IsClockTime(tt.in); got != tt.want {
			t.Errorf("IsClockTime(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
