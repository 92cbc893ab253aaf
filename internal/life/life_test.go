package life

import (
	"testing"

	"life-drift/internal/core"
	"life-drift/internal/pattern"
)

func TestCountAllDeadGrid(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {10, 10}} {
		c := CountAll(core.NewGrid(dims[0], dims[1]))
		for y := 0; y < dims[1]; y++ {
			for x := 0; x < dims[0]; x++ {
				if n := c.At(x, y); n != 0 {
					t.Fatalf("%dx%d: count at (%d,%d) = %d, expected 0", dims[0], dims[1], x, y, n)
				}
			}
		}
	}
}

func TestCountAllWrapsAroundCorner(t *testing.T) {
	g := core.NewGrid(6, 5)
	g.Set(0, 0, core.Alive)
	c := CountAll(g)

	if n := c.At(5, 4); n != 1 {
		t.Fatalf("opposite corner should see the live cell once, got %d", n)
	}
	if n := c.At(0, 0); n != 0 {
		t.Fatalf("a cell must not count itself, got %d", n)
	}
	neighbours := [][2]int{{1, 0}, {5, 0}, {0, 1}, {0, 4}, {1, 1}, {5, 1}, {1, 4}, {5, 4}}
	for _, p := range neighbours {
		if n := c.At(p[0], p[1]); n != 1 {
			t.Fatalf("count at (%d,%d) = %d, expected 1", p[0], p[1], n)
		}
	}
	if n := c.At(3, 2); n != 0 {
		t.Fatalf("distant cell should have no neighbours, got %d", n)
	}
}

func TestCountAllFullNeighbourhood(t *testing.T) {
	g := core.NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = core.Alive
	}
	c := CountAll(g)
	if n := c.At(1, 1); n != 8 {
		t.Fatalf("centre of a full 3x3 should have 8 neighbours, got %d", n)
	}
}

func TestNextStateTable(t *testing.T) {
	cases := []struct {
		state     uint8
		neighbors int
		want      uint8
	}{
		{core.Alive, 0, core.Dead},
		{core.Alive, 1, core.Dead},
		{core.Alive, 2, core.Alive},
		{core.Alive, 3, core.Alive},
		{core.Alive, 4, core.Dead},
		{core.Alive, 8, core.Dead},
		{core.Dead, 2, core.Dead},
		{core.Dead, 3, core.Alive},
		{core.Dead, 4, core.Dead},
		{core.Dead, 0, core.Dead},
	}
	for _, tc := range cases {
		if got := NextState(tc.state, tc.neighbors); got != tc.want {
			t.Fatalf("NextState(%d, %d) = %d, expected %d", tc.state, tc.neighbors, got, tc.want)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	seed, err := pattern.Oscillator(5, 5)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	life := New(seed)
	life.Step()
	cells := life.Grid()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := cells.Get(x, y) == core.Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	if !life.Grid().Equal(seed) {
		t.Fatal("blinker should return to its original orientation after two steps")
	}
	if life.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", life.Generation())
	}
}

func TestGliderTranslatesAfterFourSteps(t *testing.T) {
	seed, err := pattern.Glider(10, 10)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	g := seed
	for i := 0; i < 4; i++ {
		g = Advance(g)
	}

	shifted := core.NewGrid(10, 10)
	for _, p := range seed.LiveCells() {
		shifted.Set(p.X+1, p.Y+1, core.Alive)
	}
	if !g.Equal(shifted) {
		t.Fatalf("glider after 4 steps = %v, expected %v", g.LiveCells(), shifted.LiveCells())
	}
}

func TestGliderCrossesEdge(t *testing.T) {
	seed, _ := pattern.Glider(6, 6)
	life := New(seed)
	for i := 0; i < 4*6; i++ {
		life.Step()
	}
	if !life.Grid().Equal(seed) {
		t.Fatal("glider should return to its start after a full lap of a 6x6 torus")
	}
}

func TestAdvanceLeavesInputUntouched(t *testing.T) {
	seed, _ := pattern.Glider(8, 8)
	before := seed.Clone()
	_ = Advance(seed)
	if !seed.Equal(before) {
		t.Fatal("Advance must not mutate its input")
	}
}

func TestLifeMatchesAdvance(t *testing.T) {
	seed, _ := pattern.Random(17, 13, 5)
	life := New(seed)
	g := seed
	for i := 0; i < 25; i++ {
		life.Step()
		g = Advance(g)
		if !life.Grid().Equal(g) {
			t.Fatalf("stepper diverged from Advance at generation %d", i+1)
		}
	}
}
