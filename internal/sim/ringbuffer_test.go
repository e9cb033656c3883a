package sim

import "testing"

func TestRingBufferDrainLatestDiscardsBacklog(t *testing.T) {
	r := NewRingBuffer[int](4)
	r.TryPush(1)
	r.TryPush(2)
	r.TryPush(3)

	v, ok := r.DrainLatest()
	if !ok || v != 3 {
		t.Fatalf("DrainLatest() = (%d, %v), want (3, true)", v, ok)
	}
	if r.Len() != 0 {
		t.Fatalf("DrainLatest should empty the buffer, Len() = %d", r.Len())
	}
}

func TestRingBufferDrainLatestEmpty(t *testing.T) {
	r := NewRingBuffer[int](4)
	_, ok := r.DrainLatest()
	if ok {
		t.Fatalf("DrainLatest on an empty buffer should report false")
	}
}

func TestRingBufferTryPushFullReportsFalse(t *testing.T) {
	r := NewRingBuffer[int](2) // rounds up to capacity 2
	if !r.TryPush(1) {
		t.Fatalf("first push into an empty buffer should succeed")
	}
	if !r.TryPush(2) {
		t.Fatalf("second push should succeed")
	}
	if r.TryPush(3) {
		t.Fatalf("push into a full buffer should report false")
	}
}
