package gamemath

import "testing"

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		speed, friction, want float64
	}{
		{5, 0.5, 4.5},
		{-5, 0.5, -4.5},
		{0.3, 0.5, 0},
		{-0.3, 0.5, 0},
		{0, 0.5, 0},
	}
	for _, tt := range tests {
		if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
			t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(9, 6); got != 6 {
		t.Errorf("ClampSpeed(9, 6) = %v", got)
	}
	if got := ClampSpeed(-9, 6); got != -6 {
		t.Errorf("ClampSpeed(-9, 6) = %v", got)
	}
	if got := ClampSpeed(3, 6); got != 3 {
		t.Errorf("ClampSpeed(3, 6) = %v", got)
	}
}

func TestApplyGravity(t *testing.T) {
	if got := ApplyGravity(0, 0.75, 10); got != 0.75 {
		t.Errorf("ApplyGravity(0) = %v, want 0.75", got)
	}
	if got := ApplyGravity(9.5, 0.75, 10); got != 10 {
		t.Errorf("ApplyGravity(9.5) = %v, want capped 10", got)
	}
	if got := ApplyGravity(-15, 0.75, 10); got != -14.25 {
		t.Errorf("ApplyGravity(-15) = %v, want -14.25", got)
	}
}

func TestFacing(t *testing.T) {
	if Facing(-3, 1) != -1 || Facing(2, -1) != 1 || Facing(0, -1) != -1 {
		t.Fatal("Facing did not follow direction")
	}
}
