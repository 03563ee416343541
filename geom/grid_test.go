package geom

import "testing"

func collectPoints(it *PointIter) []Point {
	var out []Point
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		out = append(out, p)
	}
	return out
}

// The canonical enumeration contract: a 2x2 grid yields
// (0,0), (0,1), (1,0), (1,1), last dimension fastest.
func TestPointsIterOrder(t *testing.T) {
	g := FromData([]int{0, 0, 0, 0}, 2)
	if !g.Size().Eq(Pt2(2, 2)) {
		t.Fatalf("size: got %v", g.Size())
	}
	got := collectPoints(g.Points())
	want := []Point{Pt2(0, 0), Pt2(0, 1), Pt2(1, 0), Pt2(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i, p := range got {
		if !p.Eq(want[i]) {
			t.Errorf("point %d: got %v, want %v", i, p, want[i])
		}
	}
}

func TestPointsIterComplete(t *testing.T) {
	g := FromSize[int](Pt2(3, 4))
	seen := map[string]bool{}
	for _, p := range collectPoints(g.Points()) {
		if !g.InBounds(p) {
			t.Errorf("yielded out-of-bounds point %v", p)
		}
		if seen[p.String()] {
			t.Errorf("yielded %v twice", p)
		}
		seen[p.String()] = true
	}
	if len(seen) != 12 {
		t.Errorf("got %d distinct points, want 12", len(seen))
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	g := FromSize[byte](Pt3(3, 4, 5))
	it := g.Points()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		back := g.OffsetToPoint(g.DataOffset(p))
		if !back.Eq(p) {
			t.Fatalf("round trip: %v -> %d -> %v", p, g.DataOffset(p), back)
		}
	}
}

func TestBoundsConsistency(t *testing.T) {
	g := FromData([]int{1, 2, 3, 4, 5, 6}, 3)
	for _, tc := range []struct {
		p    Point
		want bool
	}{
		{Pt2(0, 0), true},
		{Pt2(2, 1), true},
		{Pt2(3, 0), false},
		{Pt2(0, 2), false},
		{Pt2(-1, 0), false},
		{Pt2(0, -1), false},
	} {
		if got := g.InBounds(tc.p); got != tc.want {
			t.Errorf("InBounds(%v): got %v", tc.p, got)
		}
		if _, ok := g.Get(tc.p); ok != tc.want {
			t.Errorf("Get(%v) presence: got %v", tc.p, ok)
		}
	}
}

func TestWriteReadConsistency(t *testing.T) {
	g := FromSize[int](Pt2(4, 4))
	if !g.Set(Pt2(2, 3), 42) {
		t.Fatal("Set on in-bounds point failed")
	}
	if got, ok := g.Get(Pt2(2, 3)); !ok || got != 42 {
		t.Errorf("Get after Set: got %d, %v", got, ok)
	}
	if g.Set(Pt2(4, 0), 1) {
		t.Error("Set on out-of-bounds point reported success")
	}
}

func TestFromLinesPadding(t *testing.T) {
	g := FromLines([]string{"AB", "C"}, func(b byte) byte { return b })
	if !g.Size().Eq(Pt2(2, 2)) {
		t.Fatalf("size: got %v", g.Size())
	}
	if got, _ := g.Get(Pt2(1, 0)); got != 'B' {
		t.Errorf("(1,0): got %q", got)
	}
	if got, _ := g.Get(Pt2(0, 1)); got != 'C' {
		t.Errorf("(0,1): got %q", got)
	}
	if got, _ := g.Get(Pt2(1, 1)); got != 0 {
		t.Errorf("(1,1): got %q, want pad value", got)
	}
}

func TestFromBytes(t *testing.T) {
	g := FromBytes([]byte("ab\ncd\nef"))
	if !g.Size().Eq(Pt2(2, 3)) {
		t.Fatalf("size: got %v", g.Size())
	}
	for _, tc := range []struct {
		p    Point
		want byte
	}{
		{Pt2(0, 0), 'a'},
		{Pt2(1, 0), 'b'},
		{Pt2(0, 1), 'c'},
		{Pt2(1, 2), 'f'},
	} {
		if got, ok := g.Get(tc.p); !ok || got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestSubViewOffset(t *testing.T) {
	g := FromSize[int](Pt2(4, 4))
	it := g.Points()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		g.Set(p, p.X()*10+p.Y())
	}
	v := g.SubView(Pt2(1, 1), Pt2(2, 2))
	want, _ := g.Get(Pt2(1, 1))
	if got, ok := v.Get(Pt2(0, 0)); !ok || got != want {
		t.Errorf("view (0,0): got %d, want %d", got, want)
	}
	want, _ = g.Get(Pt2(2, 2))
	if got, ok := v.Get(Pt2(1, 1)); !ok || got != want {
		t.Errorf("view (1,1): got %d, want %d", got, want)
	}
	if _, ok := v.Get(Pt2(2, 0)); ok {
		t.Error("view returned a value outside its window")
	}
}

func TestCopyOnWriteIndependence(t *testing.T) {
	g := FromData([]int{1, 2, 3, 4}, 2)
	v := g.SubView(Pt2(0, 0), Pt2(2, 2))
	if !v.Set(Pt2(0, 0), 99) {
		t.Fatal("Set through view failed")
	}
	if got, _ := v.Get(Pt2(0, 0)); got != 99 {
		t.Errorf("view after write: got %d", got)
	}
	if got, _ := g.Get(Pt2(0, 0)); got != 1 {
		t.Errorf("owner changed by view write: got %d", got)
	}
	// A second write must not clone again; the view now owns its copy.
	v.Set(Pt2(1, 1), 77)
	if got, _ := v.Get(Pt2(0, 0)); got != 99 {
		t.Errorf("first write lost after second: got %d", got)
	}
}

func TestBorrowIndependence(t *testing.T) {
	g := FromData([]byte("abcd"), 2)
	v := g.Borrow()
	v.Set(Pt2(0, 0), 'z')
	if got, _ := g.Get(Pt2(0, 0)); got != 'a' {
		t.Errorf("owner changed by borrowed write: got %q", got)
	}
	if got, _ := v.Get(Pt2(0, 0)); got != 'z' {
		t.Errorf("borrowed view lost its write: got %q", got)
	}
}

func TestGridSetNoClone(t *testing.T) {
	g := FromData([]int{1, 2, 3, 4}, 2)
	g.Set(Pt2(0, 0), 9)
	if got := g.At(Pt2(0, 0)); got != 9 {
		t.Errorf("grid write not visible: got %d", got)
	}
}

func TestOrientedView(t *testing.T) {
	// 0 1
	// 2 3
	g := FromData([]int{0, 1, 2, 3}, 2)
	v := g.OrientedView(Pt2(0, 0), Pt2(2, 2), Rot180)
	if got, _ := v.Get(Pt2(0, 0)); got != 3 {
		t.Errorf("Rot180 (0,0): got %d", got)
	}
	if got, _ := v.Get(Pt2(1, 1)); got != 0 {
		t.Errorf("Rot180 (1,1): got %d", got)
	}
	for _, o := range []Orientation{Identity, Rot90, Rot180, Rot270} {
		v := g.OrientedView(Pt2(0, 0), Pt2(2, 2), o)
		it := v.Points()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !v.ToLocal(v.ToGlobal(p)).Eq(p) {
				t.Errorf("orientation %d: ToLocal(ToGlobal(%v)) != %v", o, p, p)
			}
		}
	}
}

func TestFromStrides3D(t *testing.T) {
	data := make([]int, 2*3*4)
	for i := range data {
		data[i] = i
	}
	g := FromStrides(data, []int{1, 2, 6})
	if !g.Size().Eq(Pt3(2, 3, 4)) {
		t.Fatalf("size: got %v", g.Size())
	}
	if got, _ := g.Get(Pt3(1, 2, 3)); got != 1+2*2+3*6 {
		t.Errorf("(1,2,3): got %d", got)
	}
}

func TestFromDataDropsRemainder(t *testing.T) {
	g := FromData([]int{1, 2, 3, 4, 5}, 2)
	if !g.Size().Eq(Pt2(2, 2)) {
		t.Errorf("size: got %v, want (2, 2)", g.Size())
	}
}

func TestDump(t *testing.T) {
	g := FromLines([]string{"ab", "cd"}, func(b byte) byte { return b })
	got := g.Dump(func(b byte) string { return string(b) })
	if got != "ab\ncd\n" {
		t.Errorf("got %q", got)
	}
}
