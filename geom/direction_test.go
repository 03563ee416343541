package geom

import "testing"

func TestDirectionDeltas(t *testing.T) {
	for _, tc := range []struct {
		d    Direction
		want Point
	}{
		{East, Pt2(1, 0)},
		{South, Pt2(0, 1)},
		{West, Pt2(-1, 0)},
		{North, Pt2(0, -1)},
	} {
		if got := tc.d.Delta(); !got.Eq(tc.want) {
			t.Errorf("delta: got %v, want %v", got, tc.want)
		}
	}
}

func TestDirectionRotation(t *testing.T) {
	if !East.Add(1).Eq(South) {
		t.Error("East + 1 != South")
	}
	if !East.Add(-1).Eq(North) {
		t.Error("East - 1 != North")
	}
	if !North.Add(1).Eq(East) {
		t.Error("North + 1 != East")
	}
	if !East.Neg().Eq(West) {
		t.Error("-East != West")
	}
	if !South.Neg().Eq(North) {
		t.Error("-South != North")
	}
	d := East
	for i := 0; i < 4; i++ {
		d = d.Add(1)
	}
	if !d.Eq(East) {
		t.Error("four quarter turns did not return to East")
	}
}

func TestDirectionEdge(t *testing.T) {
	size := Pt2(5, 3)
	if got := East.Edge(size); !got.Eq(Pt2(0, 0)) {
		t.Errorf("East edge: got %v", got)
	}
	if got := West.Edge(size); !got.Eq(Pt2(4, 0)) {
		t.Errorf("West edge: got %v", got)
	}
	if got := North.Edge(size); !got.Eq(Pt2(0, 2)) {
		t.Errorf("North edge: got %v", got)
	}
}

func TestDirection3D(t *testing.T) {
	d := NewDirection(3, 5)
	if got := d.Delta(); !got.Eq(Pt3(0, 0, -1)) {
		t.Errorf("delta: got %v", got)
	}
	if got := d.Neg().Delta(); !got.Eq(Pt3(0, 0, 1)) {
		t.Errorf("negated delta: got %v", got)
	}
}
