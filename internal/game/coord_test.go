package game

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{0, 0}, HexCoord{0, 0}, 0},
		{HexCoord{0, 0}, HexCoord{1, 0}, 1},
		{HexCoord{0, 0}, HexCoord{2, 0}, 2},
		{HexCoord{0, 0}, HexCoord{1, 1}, 2},
		{HexCoord{0, 0}, HexCoord{1, -1}, 1},
		{HexCoord{-2, 1}, HexCoord{3, -1}, 5},
	}
	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestNeighborsOrder(t *testing.T) {
	// East, NE, NW, West, SW, SE relative to (2,-1).
	want := []HexCoord{
		{3, -1}, {3, -2}, {2, -2},
		{1, -1}, {1, 0}, {2, 0},
	}
	got := HexCoord{2, -1}.Neighbors()
	if len(got) != 6 {
		t.Fatalf("expected 6 neighbors, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbor %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestJumpedHexes(t *testing.T) {
	tests := []struct {
		name     string
		from, to HexCoord
		want     []HexCoord
	}{
		{"east jump", HexCoord{0, 0}, HexCoord{2, 0}, []HexCoord{{1, 0}}},
		{"long east jump", HexCoord{0, 0}, HexCoord{4, 0}, []HexCoord{{1, 0}, {2, 0}, {3, 0}}},
		{"northeast jump", HexCoord{0, 0}, HexCoord{2, -2}, []HexCoord{{1, -1}}},
		{"southwest jump", HexCoord{1, 0}, HexCoord{-1, 2}, []HexCoord{{0, 1}}},
		{"adjacent step has no jumped hexes", HexCoord{0, 0}, HexCoord{1, 0}, nil},
		{"not collinear", HexCoord{0, 0}, HexCoord{2, 1}, nil},
		{"same coordinate", HexCoord{0, 0}, HexCoord{0, 0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JumpedHexes(tt.from, tt.to)
			if len(got) != len(tt.want) {
				t.Fatalf("JumpedHexes(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("jumped hex %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
