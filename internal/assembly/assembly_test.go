package assembly

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-lab/internal/catalog"
	"space-lab/internal/geometry"
	"space-lab/internal/vmath"
)

const frame = float32(1.0 / 60)

type recordingCue struct {
	cues []Cue
}

func (c *recordingCue) SetCue(cue Cue) { c.cues = append(c.cues, cue) }

func (c *recordingCue) last() Cue {
	if len(c.cues) == 0 {
		return CueDefault
	}
	return c.cues[len(c.cues)-1]
}

func quadcopter(t *testing.T) *catalog.Model {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	m, ok := c.Model("drone-1")
	require.True(t, ok)
	return m
}

// run advances the scene for the given number of seconds at 60 fps, starting at
// clock time *clock.
func run(s *Scene, st State, seconds float32, clock *float32) {
	for n := int(seconds / frame); n > 0; n-- {
		*clock += frame
		s.Advance(frame, *clock, st)
	}
}

func assertNear(t *testing.T, want, got vmath.Vec3, eps float32, msgAndArgs ...interface{}) {
	t.Helper()
	assert.LessOrEqual(t, want.Dist(got), eps, msgAndArgs...)
}

func TestPartWithoutExplodedStaysPut(t *testing.T) {
	parts := []catalog.Part{{
		ID:       "antenna",
		Name:     "Antenna",
		Geometry: &catalog.GeometryDescriptor{Kind: catalog.KindBox, Dimensions: []float32{0.1, 0.1, 0.1}, Color: "#ffffff", Position: vmath.V3(1, 2, 3)},
	}}
	s := NewScene(nil, nil, nil)
	s.SetParts(parts)
	r, _ := s.Part("antenna")

	var clock float32
	for _, st := range []State{Exploded, Assembled, Exploded} {
		run(s, st, 1, &clock)
		assert.Equal(t, vmath.V3(1, 2, 3), r.Position(), "state %s", st)
	}
	assert.Zero(t, s.Connectors().Len())
}

func TestTargetFollowsState(t *testing.T) {
	m := quadcopter(t)
	fl, _ := m.Part("p3")
	r := NewPartRenderer(fl, nil, nil, nil)
	assert.Equal(t, vmath.V3(-1.5, 0, -1.5), r.Target(Assembled))
	assert.Equal(t, vmath.V3(-2.5, 0.5, -2.5), r.Target(Exploded))
	assert.Equal(t, r.Target(Assembled), r.Position(), "starts at its assembled slot")
}

func TestPositionConvergesWithoutOvershoot(t *testing.T) {
	m := quadcopter(t)
	for i := range m.Parts {
		p := &m.Parts[i]
		r := NewPartRenderer(p, nil, nil, nil)
		from, to := r.Target(Assembled), r.Target(Exploded)
		prev := r.Position().Dist(to)
		for n := 0; n < 180; n++ {
			r.Advance(frame, float32(n)*frame, Exploded)
			d := r.Position().Dist(to)
			require.LessOrEqual(t, d, prev+1e-6, "part %s moved away from its target", p.ID)
			for k := 0; k < 3; k++ {
				lo, hi := from[k], to[k]
				if lo > hi {
					lo, hi = hi, lo
				}
				require.True(t, r.Position()[k] >= lo-1e-6 && r.Position()[k] <= hi+1e-6, "part %s overshot on axis %d", p.ID, k)
			}
			prev = d
		}
		assertNear(t, to, r.Position(), 1e-3, "part %s", p.ID)
	}
}

func TestLongFrameLandsOnTarget(t *testing.T) {
	m := quadcopter(t)
	fl, _ := m.Part("p3")
	r := NewPartRenderer(fl, nil, nil, nil)
	r.Advance(2, 0, Exploded)
	assertNear(t, r.Target(Exploded), r.Position(), 1e-6)
}

func TestNinetyPercentWithinASecond(t *testing.T) {
	m := quadcopter(t)
	fl, _ := m.Part("p3")
	r := NewPartRenderer(fl, nil, nil, nil)
	gap := r.Target(Assembled).Dist(r.Target(Exploded))
	for n := 0; n < 60; n++ {
		r.Advance(frame, 0, Exploded)
	}
	assert.Less(t, r.Position().Dist(r.Target(Exploded)), gap*0.1)
}

func TestRotationJitterAndSettle(t *testing.T) {
	rest := vmath.V3(0.3, 0.2, 0)
	p := &catalog.Part{ID: "x", Name: "X", Geometry: &catalog.GeometryDescriptor{
		Kind: catalog.KindBox, Dimensions: []float32{1, 1, 1}, Color: "#000000",
		Position: vmath.V3(1, 0, 2), Exploded: &vmath.Vec3{3, 0, 2}, Rotation: &rest,
	}}
	r := NewPartRenderer(p, nil, nil, nil)
	assert.Equal(t, float32(5), r.Phase())

	var clock float32
	for n := 0; n < 300; n++ {
		clock += frame
		r.Advance(frame, clock, Assembled)
		rot := r.Rotation()
		require.InDelta(t, rest.X(), rot.X(), JitterAmplitude+1e-6)
		require.Equal(t, rest.Y(), rot.Y(), "jitter is on X only")
	}
	assert.NotEqual(t, rest, r.Rotation(), "assembled parts jitter")

	for n := 0; n < 600; n++ {
		clock += frame
		r.Advance(frame, clock, Exploded)
	}
	assertNear(t, rest, r.Rotation(), 1e-5, "exploded parts settle to rest")
}

func TestPhaseDesynchronizesMotors(t *testing.T) {
	m := quadcopter(t)
	seen := map[float32]string{}
	for _, id := range []string{"p3", "p4", "p5", "p6"} {
		p, ok := m.Part(id)
		require.True(t, ok, id)
		phase := NewPartRenderer(p, nil, nil, nil).Phase()
		_, dup := seen[phase]
		require.False(t, dup, "%s shares phase %v with %s", id, phase, seen[phase])
		seen[phase] = id
	}

	fr, _ := m.Part("p4")
	bl, _ := m.Part("p5")
	a := NewPartRenderer(fr, nil, nil, nil)
	b := NewPartRenderer(bl, nil, nil, nil)
	a.Advance(frame, 1, Assembled)
	b.Advance(frame, 1, Assembled)
	assert.NotEqual(t, a.Rotation().X(), b.Rotation().X())
}

func TestHoverScaleEmissiveAndCue(t *testing.T) {
	m := quadcopter(t)
	cue := &recordingCue{}
	r := NewPartRenderer(&m.Parts[0], nil, nil, cue)
	base := r.Color()

	r.Enter()
	assert.True(t, r.Hovered())
	assert.Equal(t, CuePointer, cue.last())
	assert.Equal(t, float32(HoverEmissive), r.Emissive())
	assert.NotEqual(t, base, r.Tint())
	for n := 0; n < 60; n++ {
		r.Advance(frame, 0, Assembled)
		require.LessOrEqual(t, r.Scale(), float32(HoverScale))
	}
	assert.InDelta(t, HoverScale, r.Scale(), 1e-3)

	r.Leave()
	assert.False(t, r.Hovered())
	assert.Equal(t, CueDefault, cue.last())
	assert.Zero(t, r.Emissive())
	assert.Equal(t, base, r.Tint())
	for n := 0; n < 60; n++ {
		r.Advance(frame, 0, Assembled)
	}
	assert.InDelta(t, 1, r.Scale(), 1e-3)
}

func TestToggleTwiceReturnsToAssembled(t *testing.T) {
	m := quadcopter(t)
	for _, partial := range []float32{0, 0.1, 0.4, 2} {
		s := NewScene(nil, nil, nil)
		s.SetParts(m.Parts)
		var clock float32
		st := Assembled.Toggle()
		run(s, st, partial, &clock)
		st = st.Toggle()
		require.Equal(t, Assembled, st)
		run(s, st, 4, &clock)
		for _, r := range s.Parts() {
			assertNear(t, r.Target(Assembled), r.Position(), 1e-3, "part %s after %.1fs exploded", r.Part().ID, partial)
			rest := r.Descriptor().RestRotation()
			assert.InDelta(t, rest.X()+JitterAmplitude*sin(clock+r.Phase()), r.Rotation().X(), 1e-5)
		}
	}
}

func TestQuadcopterDismantleScenario(t *testing.T) {
	m := quadcopter(t)
	s := NewScene(nil, nil, nil)
	s.SetParts(m.Parts)

	var motors []*PartRenderer
	for _, r := range s.Parts() {
		if strings.Contains(r.Part().Name, "Motor") {
			motors = append(motors, r)
		}
	}
	require.Len(t, motors, 4)

	assert.Empty(t, s.Connectors().Visible(Assembled))

	var clock float32
	dist := func(r *PartRenderer, st State) float32 { return r.Position().Dist(r.Target(st)) }
	before := make([]float32, len(motors))
	for i, r := range motors {
		before[i] = dist(r, Exploded)
	}
	run(s, Exploded, 0.25, &clock)
	for i, r := range motors {
		assert.Less(t, dist(r, Exploded), before[i], "motor %s trends toward its exploded slot", r.Part().ID)
	}

	visible := s.Connectors().Visible(Exploded)
	for _, r := range motors {
		var found bool
		for _, c := range visible {
			if c.PartID == r.Part().ID {
				found = true
				assert.Equal(t, r.Target(Assembled), c.From)
				assert.Equal(t, r.Target(Exploded), c.To)
			}
		}
		assert.True(t, found, "connector for %s", r.Part().ID)
	}

	run(s, Exploded, 3, &clock)
	for i, r := range motors {
		before[i] = dist(r, Assembled)
	}
	assert.Empty(t, s.Connectors().Visible(Assembled), "flipping back removes connectors")
	run(s, Assembled, 0.25, &clock)
	for i, r := range motors {
		assert.Less(t, dist(r, Assembled), before[i], "motor %s trends back", r.Part().ID)
	}
}

func TestGroupIdleMotion(t *testing.T) {
	s := NewScene(nil, nil, nil)
	s.SetParts(quadcopter(t).Parts)

	var clock float32
	run(s, Assembled, 10, &clock)
	assert.InDelta(t, YawSpeed*10, s.Yaw(), 0.01)
	assert.InDelta(t, BobAmplitude*sin(clock*BobFrequency), s.Bob(), 0.02)
	assert.LessOrEqual(t, abs(s.Bob()), float32(BobAmplitude))

	yaw := s.Yaw()
	run(s, Exploded, 3, &clock)
	assert.Equal(t, yaw, s.Yaw(), "yaw is held while exploded")
	assert.InDelta(t, 0, s.Bob(), 1e-4, "bob settles to zero")

	run(s, Assembled, 1, &clock)
	assert.Greater(t, s.Yaw(), yaw, "yaw resumes from where it stopped")
}

func TestSwitchingModelsRebuilds(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	quad, _ := c.Model("drone-1")
	hex, _ := c.Model("drone-2")

	cue := &recordingCue{}
	s := NewScene(nil, nil, cue)
	s.SetParts(quad.Parts)
	var clock float32
	run(s, Exploded, 2, &clock)
	s.Hover(&geometry.Ray{Origin: vmath.V3(-2.4, 10, -2.45), Dir: vmath.V3(0, -1, 0)})
	require.NotNil(t, s.Hovered())
	old := s.Connectors()

	s.SetParts(hex.Parts)
	assert.True(t, old.Released())
	assert.Zero(t, old.Len())
	assert.Nil(t, s.Hovered())
	assert.Equal(t, CueDefault, cue.last())
	require.Len(t, s.Parts(), 10)
	assert.Equal(t, 9, s.Connectors().Len(), "the fallback gimbal has no connector")

	m1, _ := s.Part("p3")
	assert.Equal(t, "Motor 1", m1.Part().Name)
	assert.Equal(t, vmath.V3(0, 0, -2), m1.Position(), "no pose carries over from the quadcopter")
	run(s, Exploded, 4, &clock)
	assertNear(t, vmath.V3(0, 0.5, -3), m1.Position(), 1e-3)
}

func TestHoverDispatchesLeaveBeforeEnter(t *testing.T) {
	cue := &recordingCue{}
	s := NewScene(nil, nil, cue)
	s.SetParts(quadcopter(t).Parts)

	down := vmath.V3(0, -1, 0)
	overFL := geometry.Ray{Origin: vmath.V3(-1.4, 10, -1.45), Dir: down}
	overFR := geometry.Ray{Origin: vmath.V3(1.4, 10, -1.45), Dir: down}
	empty := geometry.Ray{Origin: vmath.V3(5, 10, 5), Dir: down}

	s.Hover(&overFL)
	require.NotNil(t, s.Hovered())
	assert.Equal(t, "p3", s.Hovered().Part().ID)
	s.Hover(&overFL)
	assert.Equal(t, []Cue{CuePointer}, cue.cues, "staying on a part does not re-enter")

	s.Hover(&overFR)
	assert.Equal(t, "p4", s.Hovered().Part().ID)
	assert.Equal(t, []Cue{CuePointer, CueDefault, CuePointer}, cue.cues)
	fl, _ := s.Part("p3")
	assert.False(t, fl.Hovered())

	s.Hover(&empty)
	assert.Nil(t, s.Hovered())
	assert.Equal(t, CueDefault, cue.last())

	s.Hover(&overFR)
	s.Hover(nil)
	assert.Nil(t, s.Hovered(), "leaving the viewer clears hover")
	assert.Equal(t, CueDefault, cue.last())
}

func TestClickPicksNearestPart(t *testing.T) {
	var picked []string
	s := NewScene(nil, func(p *catalog.Part) { picked = append(picked, p.ID) }, nil)
	s.SetParts(quadcopter(t).Parts)

	down := vmath.V3(0, -1, 0)
	assert.True(t, s.Click(geometry.Ray{Origin: vmath.V3(0.1, 10, 0.2), Dir: down}))
	assert.True(t, s.Click(geometry.Ray{Origin: vmath.V3(0.1, -10, 0.2), Dir: vmath.V3(0, 1, 0)}))
	assert.False(t, s.Click(geometry.Ray{Origin: vmath.V3(5, 10, 5), Dir: down}), "a miss leaves the press to the camera")
	assert.Equal(t, []string{"p1", "p2"}, picked, "flight controller from above, battery from below")
}

func TestFallbackPartIsPickable(t *testing.T) {
	parts := []catalog.Part{{ID: "g", Name: "Gimbal", Color: "bg-purple-500"}}
	var picked *catalog.Part
	s := NewScene(nil, func(p *catalog.Part) { picked = p }, nil)
	s.SetParts(parts)

	r, _ := s.Part("g")
	assert.Equal(t, catalog.KindBox, r.Shape().Kind)
	assert.Equal(t, uint8(168), r.Color().R, "drawn in the part's swatch color")

	require.True(t, s.Click(geometry.Ray{Origin: vmath.V3(0.2, 10, 0.2), Dir: vmath.V3(0, -1, 0)}))
	require.NotNil(t, picked)
	assert.Equal(t, "g", picked.ID)
}

func TestHitTestFollowsGroupYaw(t *testing.T) {
	s := NewScene(nil, nil, nil)
	s.SetParts(quadcopter(t).Parts)
	// Quarter turn: the FL motor at (-1.5, -1.5) swings to (-1.5, 1.5).
	s.yaw = 1.5707964
	r, ok := s.HitTest(geometry.Ray{Origin: vmath.V3(-1.45, 10, 1.4), Dir: vmath.V3(0, -1, 0)})
	require.True(t, ok)
	assert.Equal(t, "p3", r.Part().ID)

	world := s.World(r).TransformPoint(vmath.Vec3{})
	assert.InDelta(t, -1.5, world.X(), 0.05)
	assert.InDelta(t, 1.5, world.Z(), 0.05)
}

func TestConnectorSetRelease(t *testing.T) {
	set := BuildConnectors(quadcopter(t).Parts)
	assert.Equal(t, 8, set.Len())
	assert.Len(t, set.Visible(Exploded), 8)
	assert.Empty(t, set.Visible(Assembled))
	set.Release()
	set.Release()
	assert.True(t, set.Released())
	assert.Empty(t, set.Visible(Exploded))

	var none *ConnectorSet
	none.Release()
	assert.Zero(t, none.Len())
}

func TestStateToggle(t *testing.T) {
	assert.Equal(t, Exploded, Assembled.Toggle())
	assert.Equal(t, Assembled, Exploded.Toggle())
	assert.Equal(t, "exploded", Exploded.String())
}

func sin(x float32) float32 {
	return vmath.Oscillate(x, 1, 0, 1)
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
