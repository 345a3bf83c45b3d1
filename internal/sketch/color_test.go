package sketch

import (
	"errors"
	"image/color"
	"testing"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"ff0000", "ff0000", false},
		{"#00FF00", "00ff00", false},
		{"000000", "000000", false},
		{"fff", "", true},
		{"12345g", "", true},
		{"", "", true},
		{"#1234567", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("NormalizeColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeColor(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("ff8000")
	if err != nil {
		t.Fatal(err)
	}
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if c != want {
		t.Errorf("ParseColor = %v, want %v", c, want)
	}
}

func TestToolValidate(t *testing.T) {
	got, err := Tool{Weight: 4, Color: "#0000FF"}.Validate()
	if err != nil {
		t.Fatal(err)
	}
	if got.Color != "0000ff" || got.Weight != 4 {
		t.Errorf("Validate = %+v", got)
	}

	for _, w := range []float64{0, -1} {
		if _, err := (Tool{Weight: w, Color: "000000"}).Validate(); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("weight %v: error = %v, want ErrInvalidWeight", w, err)
		}
	}
	if _, err := (Tool{Weight: 1, Color: "red"}).Validate(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}
}
