package pixel

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v    float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.001, 0},
		{0.002, 1},
		{0.5, 128},
		{0.999, 255},
		{1, 255},
		{1.5, 255},
		{math.Inf(1), 255},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, test := range tests {
		if v := Clamp(test.v); v != test.want {
			t.Errorf("Clamp(%g): expected %d, got %d", test.v, test.want, v)
		}
	}
}

func TestColorEqual(t *testing.T) {
	c := RGB(0.25, 0.5, 0.75)
	tests := []struct {
		name string
		o    Color
		want bool
	}{
		{"same", c, true},
		{"within epsilon", RGB(0.25+Epsilon/2, 0.5-Epsilon/2, 0.75), true},
		{"red off", RGB(0.25+2*Epsilon, 0.5, 0.75), false},
		{"green off", RGB(0.25, 0.5+2*Epsilon, 0.75), false},
		{"blue off", RGB(0.25, 0.5, 0.75-2*Epsilon), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if v := c.Equal(test.o); v != test.want {
				it.Errorf("%s.Equal(%s): expected %t, got %t", c, test.o, test.want, v)
			}
		})
	}
}

func TestColorArithmetic(t *testing.T) {
	var (
		a = RGB(0.9, 0.6, 0.75)
		b = RGB(0.7, 0.1, 0.25)
	)
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"add", a.Add(b), RGB(1.6, 0.7, 1.0)},
		{"sub", a.Sub(b), RGB(0.2, 0.5, 0.5)},
		{"scale", RGB(0.2, 0.3, 0.4).Scale(2), RGB(0.4, 0.6, 0.8)},
		{"mul", RGB(1, 0.2, 0.4).Mul(RGB(0.9, 1, 0.1)), RGB(0.9, 0.2, 0.04)},
		{"lerp start", White.Lerp(b, 0), White},
		{"lerp end", White.Lerp(b, 1), b},
		{"lerp half", Black.Lerp(RGB(1, 0.5, 0), 0.5), RGB(0.5, 0.25, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if diff := cmp.Diff(test.want, test.got); diff != "" {
				it.Errorf("unexpected color (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	r, g, b := RGB(-0.5, 0.5, 1.0).Bytes()
	if r != 0 || g != 128 || b != 255 {
		t.Errorf("expected (0, 128, 255), got (%d, %d, %d)", r, g, b)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(-1, 0.5, 2).RGBA()
	if r != 0 {
		t.Errorf("expected red to be %#04x, got %#04x", 0, r)
	}
	if g != 0x8000 {
		t.Errorf("expected green to be %#04x, got %#04x", 0x8000, g)
	}
	if b != 0xffff {
		t.Errorf("expected blue to be %#04x, got %#04x", 0xffff, b)
	}
	if a != 0xffff {
		t.Errorf("expected alpha to be %#04x, got %#04x", 0xffff, a)
	}
}

func TestModel(t *testing.T) {
	tests := []struct {
		in   color.Color
		want Color
	}{
		{color.Black, Black},
		{color.White, White},
		{color.RGBA{R: 0xff, A: 0xff}, RGB(1, 0, 0)},
		{color.Gray16{Y: 0x8000}, RGB(0x8000/65535.0, 0x8000/65535.0, 0x8000/65535.0)},
		{RGB(3, -1, 0.5), RGB(3, -1, 0.5)},
	}
	for _, test := range tests {
		v, ok := Model.Convert(test.in).(Color)
		if !ok {
			t.Fatalf("Model.Convert(%v): expected %T, got %T", test.in, Color{}, Model.Convert(test.in))
		}
		if !v.Equal(test.want) {
			t.Errorf("Model.Convert(%v): expected %s, got %s", test.in, test.want, v)
		}
	}
}
