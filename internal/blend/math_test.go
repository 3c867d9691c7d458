package blend

import "testing"

func TestDiv255(t *testing.T) {
	// Every sum of two byte products must round like exact division.
	for x := uint32(0); x <= 255*255; x++ {
		if got, want := div255(x), (x+127)/255; got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct{ a, b, want byte }{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{128, 128, 64},
		{200, 100, 78},
		{127, 127, 63},
		{1, 255, 1},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLerp255_Table(t *testing.T) {
	tests := []struct{ d, s, t, want byte }{
		{10, 200, 0, 10},
		{10, 200, 255, 200},
		{0, 255, 128, 128},
		{255, 0, 128, 127},
		{10, 200, 51, 48},
	}
	for _, tt := range tests {
		if got := lerp255(tt.d, tt.s, tt.t); got != tt.want {
			t.Errorf("lerp255(%d, %d, %d) = %d, want %d", tt.d, tt.s, tt.t, got, tt.want)
		}
	}
}

func TestClampedArithmetic(t *testing.T) {
	if got := addClamp(200, 100); got != 255 {
		t.Errorf("addClamp(200, 100) = %d", got)
	}
	if got := addClamp(20, 30); got != 50 {
		t.Errorf("addClamp(20, 30) = %d", got)
	}
	if got := subClamp(20, 30); got != 0 {
		t.Errorf("subClamp(20, 30) = %d", got)
	}
	if got := subClamp(30, 20); got != 10 {
		t.Errorf("subClamp(30, 20) = %d", got)
	}
}

func BenchmarkDiv255(b *testing.B) {
	var sink uint32
	for i := range b.N {
		sink += div255(uint32(i) & 0xffff)
	}
	_ = sink
}
