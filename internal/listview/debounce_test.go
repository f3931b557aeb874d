package listview

import (
	"sync"
	"testing"
	"time"
)

type commitLog struct {
	mu     sync.Mutex
	values []string
}

func (l *commitLog) commit(v string) {
	l.mu.Lock()
	l.values = append(l.values, v)
	l.mu.Unlock()
}

func (l *commitLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

func TestDebounceCommitsOnlyLastValue(t *testing.T) {
	var log commitLog
	d := NewDebouncer(40*time.Millisecond, log.commit)
	defer d.Stop()

	for _, v := range []string{"j", "jo", "joh", "john"} {
		d.Input(v)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	got := log.snapshot()
	if len(got) != 1 || got[0] != "john" {
		t.Fatalf("committed %v, want exactly [john]", got)
	}
}

func TestDebounceSpacedInputsAllCommit(t *testing.T) {
	var log commitLog
	d := NewDebouncer(10*time.Millisecond, log.commit)
	defer d.Stop()

	d.Input("a")
	time.Sleep(40 * time.Millisecond)
	d.Input("b")
	time.Sleep(40 * time.Millisecond)

	got := log.snapshot()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("committed %v, want [a b]", got)
	}
}

func TestDebounceStopPreventsPendingCommit(t *testing.T) {
	var log commitLog
	d := NewDebouncer(20*time.Millisecond, log.commit)

	d.Input("pending")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := log.snapshot(); len(got) != 0 {
		t.Fatalf("commit fired after Stop: %v", got)
	}

	// Inputs after Stop are ignored too.
	d.Input("late")
	time.Sleep(60 * time.Millisecond)
	if got := log.snapshot(); len(got) != 0 {
		t.Fatalf("input after Stop committed: %v", got)
	}
}

func TestDebounceZeroDelayCommitsSynchronously(t *testing.T) {
	var log commitLog
	d := NewDebouncer(0, log.commit)
	defer d.Stop()

	d.Input("now")
	if got := log.snapshot(); len(got) != 1 || got[0] != "now" {
		t.Fatalf("zero delay did not commit synchronously: %v", got)
	}
}

func TestDebounceFlush(t *testing.T) {
	var log commitLog
	d := NewDebouncer(time.Hour, log.commit)
	defer d.Stop()

	d.Input("queued")
	d.Flush()
	if got := log.snapshot(); len(got) != 1 || got[0] != "queued" {
		t.Fatalf("flush did not commit pending value: %v", got)
	}

	// Nothing pending: Flush is a no-op.
	d.Flush()
	if got := log.snapshot(); len(got) != 1 {
		t.Fatalf("flush with nothing pending committed again: %v", got)
	}
}
