package sim

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEventLogEmitBeforeStartIsRejected(t *testing.T) {
	el := NewEventLog()
	if el.EmitSimple(EventTypeTick, 1, nil) {
		t.Fatalf("Emit should fail before Start")
	}
}

func TestEventLogEmitAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	el := NewEventLog()
	if err := el.Start(path); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer el.Stop()

	for i := uint64(0); i < 5; i++ {
		if !el.EmitSimple(EventTypeDamage, i, DamagePayload{HP: 5, Source: "enemy"}) {
			t.Fatalf("Emit(%d) should succeed", i)
		}
	}

	el.Stop()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if len(scanner.Text()) > 0 {
			lines++
		}
	}
	if lines != 5 {
		t.Fatalf("wrote %d log lines, want 5", lines)
	}
}

func TestEventLogDropsOldestWhenBufferFull(t *testing.T) {
	el := NewEventLog()
	el.limiter.SetLimit(1e9)
	el.limiter.SetBurst(EventBufferSize * 2)
	if err := el.Start(""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer el.Stop()

	for i := uint64(0); i < EventBufferSize+10; i++ {
		el.EmitSimple(EventTypeTick, i, nil)
	}

	stats := el.GetStats()
	if stats["dropped"].(uint64) == 0 {
		t.Fatalf("expected dropped count > 0 after overflowing the buffer")
	}
	if stats["total"].(uint64) != EventBufferSize+10 {
		t.Fatalf("total = %v, want %d", stats["total"], EventBufferSize+10)
	}
}

func TestEventLogGetStatsReportsRunning(t *testing.T) {
	el := NewEventLog()
	stats := el.GetStats()
	if stats["running"].(bool) {
		t.Fatalf("running should be false before Start")
	}

	if err := el.Start(""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	stats = el.GetStats()
	if !stats["running"].(bool) {
		t.Fatalf("running should be true after Start")
	}

	el.Stop()
	stats = el.GetStats()
	if stats["running"].(bool) {
		t.Fatalf("running should be false after Stop")
	}
}

func TestEventLogStopIsIdempotent(t *testing.T) {
	el := NewEventLog()
	if err := el.Start(""); err != nil {
		t.Fatalf("Start: %v", err)
	}
	el.Stop()
	el.Stop()
}

func TestEventLogBatchFlushOnTicker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.log")
	el := NewEventLog()
	if err := el.Start(path); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer el.Stop()

	el.EmitSimple(EventTypeExtraLife, 1, nil)

	time.Sleep(BatchFlushInterval * 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected the periodic ticker to flush at least one event to disk")
	}
}
