package history

import "testing"

func TestBufferWindow(t *testing.T) {
	b := NewBuffer(5)

	for i := 0; i < 7; i++ {
		b.Push(float64(30 + i))
	}

	if b.Len() != 5 {
		t.Errorf("expected 5 values, got %d", b.Len())
	}

	vals := b.Values()
	if vals[0] != 32.0 {
		t.Errorf("oldest value: got %f, want 32.0 (two evicted)", vals[0])
	}
	if vals[len(vals)-1] != 36.0 {
		t.Errorf("newest value: got %f, want 36.0", vals[len(vals)-1])
	}

	if b.Min() != 30.0 {
		t.Errorf("Min: got %f, want 30.0 (evicted values still count)", b.Min())
	}
	if b.Peak() != 36.0 {
		t.Errorf("Peak: got %f, want 36.0", b.Peak())
	}
}

func TestBufferPartial(t *testing.T) {
	b := NewBuffer(10)
	b.Push(45.0)
	b.Push(47.0)

	if b.Len() != 2 {
		t.Errorf("expected 2 values, got %d", b.Len())
	}
	if b.Min() != 45.0 || b.Peak() != 47.0 {
		t.Errorf("min/peak: got %f/%f", b.Min(), b.Peak())
	}
}
