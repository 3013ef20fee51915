package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{5 * time.Second, "0:05"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
		{125 * time.Minute, "125:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatSpan(t *testing.T) {
	got := FormatSpan(2*time.Second, 70*time.Second, 3*time.Minute)
	if got != "0:02 - 1:10 / 3:00" {
		t.Fatalf("FormatSpan() = %q", got)
	}
}

func TestFormatZoom(t *testing.T) {
	tests := []struct {
		z    float64
		want string
	}{
		{1, "zoom 1.0x"},
		{12.34, "zoom 12.3x"},
		{250.6, "zoom 251x"},
	}
	for _, tt := range tests {
		if got := FormatZoom(tt.z); got != tt.want {
			t.Fatalf("FormatZoom(%v) = %q, want %q", tt.z, got, tt.want)
		}
	}
}
