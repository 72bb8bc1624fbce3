package secretmem

import "testing"

func TestAcquireRelease(t *testing.T) {
	b := Acquire(32)
	data := b.Bytes()
	if len(data) != 32 {
		t.Fatalf("len(Bytes()) = %d, want 32", len(data))
	}
	for i := range data {
		data[i] = byte(i + 1)
	}

	b.Release()

	if b.Bytes() != nil {
		t.Fatalf("Bytes() after Release should be nil")
	}
}

func TestReleaseZeroesBackingArray(t *testing.T) {
	b := Acquire(16)
	data := b.Bytes()
	for i := range data {
		data[i] = 0xFF
	}
	// Keep a reference to the backing array to confirm wiping happened in
	// place, not just that the Buffer forgot about it.
	shared := data

	b.Release()

	for i, v := range shared {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, v)
		}
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	b := Acquire(8)
	b.Release()
	b.Release() // must not panic
}

func TestAcquireZeroLength(t *testing.T) {
	b := Acquire(0)
	if len(b.Bytes()) != 0 {
		t.Fatalf("expected empty buffer")
	}
	b.Release()
}
