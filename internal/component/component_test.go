package component

import (
	"testing"

	"crab-roguelike/internal/ecs"
)

func TestContainerVolumeIsRecomputed(t *testing.T) {
	w := ecs.NewWorld()
	owner := w.CreateEntity()
	bag := &Container{MaxVolume: 10}
	w.Add(owner, bag)

	for _, vol := range []float64{1.5, 2.5} {
		id := w.CreateEntity()
		w.Add(id, &Item{Volume: vol, Holder: owner})
		bag.Items = append(bag.Items, id)
	}
	if got := bag.CurrentVolume(w); got != 4 {
		t.Fatalf("CurrentVolume = %v; want 4", got)
	}

	// Shrinking an item is reflected immediately.
	ItemOf(w, bag.Items[0]).Volume = 0.5
	if got := bag.CurrentVolume(w); got != 3 {
		t.Fatalf("CurrentVolume after change = %v; want 3", got)
	}
}

func TestRenderableFrames(t *testing.T) {
	r := &Renderable{Frames: []string{"a", "b"}, Speed: 1.0}
	if got := r.Frame(0.1); got != "a" {
		t.Errorf("Frame(0.1) = %q; want a", got)
	}
	if got := r.Frame(0.6); got != "b" {
		t.Errorf("Frame(0.6) = %q; want b", got)
	}
	r.Freeze()
	if got := r.Frame(0.6); got != "a" {
		t.Errorf("frozen Frame(0.6) = %q; want a", got)
	}
	if got := (&Renderable{}).Frame(3); got != "?" {
		t.Errorf("empty Frame = %q; want ?", got)
	}
}

func TestLookupsReturnNilWhenAbsent(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	if CreatureOf(w, id) != nil || ItemOf(w, id) != nil || AIOf(w, id) != nil ||
		ContainerOf(w, id) != nil || PositionOf(w, id) != nil || RenderableOf(w, id) != nil {
		t.Fatal("lookups on a bare entity must return nil")
	}
	c := NewCreature("Bob", 7, DeathMonster)
	w.Add(id, c)
	if CreatureOf(w, id) != c {
		t.Fatal("CreatureOf should return the attached instance")
	}
	if c.HP != 7 || c.MaxHP != 7 {
		t.Fatalf("NewCreature should start at full health, got %d/%d", c.HP, c.MaxHP)
	}
}
