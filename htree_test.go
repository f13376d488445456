package htree

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		order   int
		wantErr error
	}{
		{"zero", 0, nil},
		{"one", 1, nil},
		{"typical", 14, nil},
		{"max", MaxOrder, nil},
		{"negative", -1, ErrNegativeOrder},
		{"too large", MaxOrder + 1, ErrOrderTooLarge},
		{"far too large", 1 << 20, ErrOrderTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New[float64](tt.order)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%d) error = %v, want %v", tt.order, err, tt.wantErr)
			}
			if err == nil && h.Order() != tt.order {
				t.Errorf("Order() = %d, want %d", h.Order(), tt.order)
			}
		})
	}
}

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		order int
		want  uint64
	}{
		{0, 1},
		{1, 3},
		{2, 7},
		{10, 2047},
		{14, 32767},
		{62, 1<<63 - 1},
	}

	for _, tt := range tests {
		h, err := New[float64](tt.order)
		if err != nil {
			t.Fatalf("New(%d): %v", tt.order, err)
		}
		if got := h.SegmentCount(); got != tt.want {
			t.Errorf("SegmentCount() for order %d = %d, want %d", tt.order, got, tt.want)
		}
	}
}

// TestCountLaw verifies that iteration yields exactly 2^(order+1)-1
// segments before signaling end-of-sequence.
func TestCountLaw(t *testing.T) {
	for order := 0; order <= 10; order++ {
		h, err := New[float64](order)
		if err != nil {
			t.Fatalf("New(%d): %v", order, err)
		}
		var n uint64
		for range h.Segments() {
			n++
		}
		if n != h.SegmentCount() {
			t.Errorf("order %d yielded %d segments, want %d", order, n, h.SegmentCount())
		}
	}
}

// TestLevelSizeLaw verifies that each level k contributes exactly 2^k
// segments, occupying positions [2^k, 2^(k+1)-1].
func TestLevelSizeLaw(t *testing.T) {
	const order = 8
	h, err := New[float64](order)
	if err != nil {
		t.Fatal(err)
	}

	counts := make([]uint64, order+1)
	var position uint64
	for range h.Segments() {
		position++
		level, _, ok := decodePosition(position, order)
		if !ok {
			t.Fatalf("position %d failed to decode", position)
		}
		counts[level]++
	}
	for k := 0; k <= order; k++ {
		if want := uint64(1) << uint(k); counts[k] != want {
			t.Errorf("level %d has %d segments, want %d", k, counts[k], want)
		}
	}
}

// TestBoundingBoxLaw verifies all endpoints stay inside
// [0,1] x [0, 1/sqrt(2)].
func TestBoundingBoxLaw(t *testing.T) {
	const tolerance = 1e-12
	for _, order := range []int{0, 1, 2, 5, 9, 12} {
		h, err := New[float64](order)
		if err != nil {
			t.Fatalf("New(%d): %v", order, err)
		}
		for seg := range h.Segments() {
			for _, p := range []Point[float64]{seg.Start, seg.End} {
				if p.X < -tolerance || p.X > 1+tolerance {
					t.Fatalf("order %d: x = %v out of [0,1]", order, p.X)
				}
				if p.Y < -tolerance || p.Y > ScaleHeight+tolerance {
					t.Fatalf("order %d: y = %v out of [0, %v]", order, p.Y, ScaleHeight)
				}
			}
		}
	}
}

// TestDeterminism verifies that independently constructed sequences
// from the same order produce element-wise identical output and never
// observe each other's cursor.
func TestDeterminism(t *testing.T) {
	const order = 7
	h1, _ := New[float64](order)
	h2, _ := New[float64](order)

	it1 := h1.Iterator()
	it2 := h2.Iterator()
	// Advance it2 partway before it1 starts, then restart it to check
	// that cursors from the same tree are independent too.
	for i := 0; i < 5; i++ {
		it2.Next()
	}
	it2 = h2.Iterator()

	for {
		s1, ok1 := it1.Next()
		s2, ok2 := it2.Next()
		if ok1 != ok2 {
			t.Fatalf("sequences diverge in length at position %d", it1.Position())
		}
		if !ok1 {
			break
		}
		if s1 != s2 {
			t.Fatalf("position %d: %+v != %+v", it1.Position(), s1, s2)
		}
	}
}

// TestTypeEquivalence verifies that float32 and float64 trees agree
// within a small relative tolerance.
func TestTypeEquivalence(t *testing.T) {
	const (
		order     = 10
		tolerance = 1e-5
	)
	h32, _ := New[float32](order)
	h64, _ := New[float64](order)

	it32 := h32.Iterator()
	it64 := h64.Iterator()
	for {
		s32, ok32 := it32.Next()
		s64, ok64 := it64.Next()
		if ok32 != ok64 {
			t.Fatal("float32 and float64 sequences differ in length")
		}
		if !ok32 {
			break
		}
		pairs := [][2]float64{
			{float64(s32.Start.X), s64.Start.X},
			{float64(s32.Start.Y), s64.Start.Y},
			{float64(s32.End.X), s64.End.X},
			{float64(s32.End.Y), s64.End.Y},
		}
		for _, pair := range pairs {
			if math.Abs(pair[0]-pair[1]) > tolerance {
				t.Fatalf("position %d: float32 %v vs float64 %v", it64.Position(), pair[0], pair[1])
			}
		}
	}
}

func TestOrder0(t *testing.T) {
	h, err := New[float64](0)
	if err != nil {
		t.Fatal(err)
	}
	it := h.Iterator()

	seg, ok := it.Next()
	if !ok {
		t.Fatal("order 0 produced no segments")
	}
	want := Segment[float64]{
		Start: Pt(0.25, 0.5*ScaleHeight),
		End:   Pt(0.75, 0.5*ScaleHeight),
	}
	if !approxSegment(seg, want, 1e-12) {
		t.Errorf("root bar = %+v, want %+v", seg, want)
	}
	if !seg.Horizontal() {
		t.Error("root bar is not horizontal")
	}

	// The very next advance must signal end-of-sequence, and stay there.
	if _, ok := it.Next(); ok {
		t.Error("order 0 produced a second segment")
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator produced a segment")
	}
}

func TestOrder1(t *testing.T) {
	h, err := New[float64](1)
	if err != nil {
		t.Fatal(err)
	}

	want := []Segment[float64]{
		{Start: Pt(0.25, 0.5*ScaleHeight), End: Pt(0.75, 0.5*ScaleHeight)},
		{Start: Pt(0.25, 0.25*ScaleHeight), End: Pt(0.25, 0.75*ScaleHeight)},
		{Start: Pt(0.75, 0.25*ScaleHeight), End: Pt(0.75, 0.75*ScaleHeight)},
	}

	var got []Segment[float64]
	for seg := range h.Segments() {
		got = append(got, seg)
	}
	if len(got) != len(want) {
		t.Fatalf("order 1 yielded %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if !approxSegment(got[i], want[i], 1e-12) {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if !got[1].Vertical() || !got[2].Vertical() {
		t.Error("order 1 arms are not vertical")
	}
}

func TestSegmentAt(t *testing.T) {
	const order = 6
	h, _ := New[float64](order)

	if _, ok := h.SegmentAt(0); ok {
		t.Error("position 0 decoded; the counter's zero value is never valid")
	}
	if _, ok := h.SegmentAt(h.SegmentCount() + 1); ok {
		t.Error("position past the end decoded")
	}

	// Random access must agree with sequential iteration everywhere.
	it := h.Iterator()
	for position := uint64(1); ; position++ {
		want, ok := it.Next()
		got, okAt := h.SegmentAt(position)
		if ok != okAt {
			t.Fatalf("position %d: iterator ok=%v, SegmentAt ok=%v", position, ok, okAt)
		}
		if !ok {
			break
		}
		if got != want {
			t.Fatalf("position %d: SegmentAt %+v != iterator %+v", position, got, want)
		}
	}
}

func TestSegmentsEarlyBreak(t *testing.T) {
	h, _ := New[float64](5)

	n := 0
	for range h.Segments() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("broke after %d segments, want 3", n)
	}

	// A fresh pass is unaffected by the abandoned one.
	var total uint64
	for range h.Segments() {
		total++
	}
	if total != h.SegmentCount() {
		t.Errorf("restarted sequence yielded %d segments, want %d", total, h.SegmentCount())
	}
}

// TestParallelDecode shards the position range across goroutines and
// checks the merged result against sequential iteration. Decoding
// carries no shared state, so no synchronization is involved beyond
// the WaitGroup.
func TestParallelDecode(t *testing.T) {
	const (
		order  = 10
		shards = 8
	)
	h, _ := New[float64](order)
	count := h.SegmentCount()

	got := make([]Segment[float64], count)
	var wg sync.WaitGroup
	for s := 0; s < shards; s++ {
		wg.Add(1)
		go func(shard uint64) {
			defer wg.Done()
			for position := shard + 1; position <= count; position += shards {
				seg, ok := h.SegmentAt(position)
				if !ok {
					t.Errorf("position %d failed to decode", position)
					return
				}
				got[position-1] = seg
			}
		}(uint64(s))
	}
	wg.Wait()

	var position uint64
	for want := range h.Segments() {
		if got[position] != want {
			t.Fatalf("position %d: parallel %+v != sequential %+v", position+1, got[position], want)
		}
		position++
	}
}

func TestSegmentGeometry(t *testing.T) {
	h, _ := New[float64](4)
	for seg := range h.Segments() {
		if seg.Horizontal() == seg.Vertical() {
			t.Fatalf("segment %+v is neither strictly horizontal nor strictly vertical", seg)
		}
		if seg.Length() <= 0 {
			t.Fatalf("segment %+v has non-positive length", seg)
		}
	}
}

func TestSegmentMul(t *testing.T) {
	seg := Segment[float64]{Start: Pt(0.25, 0.5), End: Pt(0.75, 0.5)}
	scaled := seg.Mul(700)
	want := Segment[float64]{Start: Pt(175.0, 350.0), End: Pt(525.0, 350.0)}
	if !approxSegment(scaled, want, 1e-9) {
		t.Errorf("Mul(700) = %+v, want %+v", scaled, want)
	}
}

func approxSegment(got, want Segment[float64], tolerance float64) bool {
	return approx(got.Start.X, want.Start.X, tolerance) &&
		approx(got.Start.Y, want.Start.Y, tolerance) &&
		approx(got.End.X, want.End.X, tolerance) &&
		approx(got.End.Y, want.End.Y, tolerance)
}

func approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
