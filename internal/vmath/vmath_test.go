package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorClamped(t *testing.T) {
	tests := []struct {
		name string
		rate float32
		dt   float32
		want float32
	}{
		{"zero frame", 4, 0, 0},
		{"normal frame", 4, 1.0 / 60, 4.0 / 60},
		{"long frame", 4, 2, 1},
		{"negative dt", 4, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Factor(tt.rate, tt.dt), 1e-6)
		})
	}
}

func TestApproachNeverOvershoots(t *testing.T) {
	cur := float32(0)
	for i := 0; i < 500; i++ {
		cur = Approach(cur, 10, 4, 0.1)
		assert.LessOrEqual(t, cur, float32(10))
	}
	assert.InDelta(t, 10, cur, 1e-4)

	// A single huge frame lands exactly on target.
	assert.Equal(t, float32(-3), Approach(5, -3, 4, 10))
}

func TestApproachVec3Converges(t *testing.T) {
	cur := V3(-1.5, 0, -1.5)
	target := V3(-2.5, 0.5, -2.5)
	for i := 0; i < 600; i++ {
		cur = ApproachVec3(cur, target, 4, 1.0/60)
	}
	assert.InDelta(t, 0, cur.Dist(target), 1e-4)
}

func TestSettleTimeUnderOneSecond(t *testing.T) {
	assert.Less(t, SettleTime(4, 0.9), float32(1))
	assert.Equal(t, float32(0), SettleTime(0, 0.9))
}

func TestOscillateBounded(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Oscillate(float32(i)*0.37, 1, 0.5, 0.02)
		assert.LessOrEqual(t, v, float32(0.02))
		assert.GreaterOrEqual(t, v, float32(-0.02))
	}
}

func TestVec3Ops(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 3)
	assert.Equal(t, V3(5, 8, 6), a.Add(b))
	assert.Equal(t, V3(3, 4, 0), b.Sub(a))
	assert.InDelta(t, 5, a.Dist(b), 1e-6)
	assert.Equal(t, V3(2.5, 4, 3), a.Lerp(b, 0.5))
	assert.Equal(t, Splat(2), V3(1, 1, 1).Scale(2))
}
