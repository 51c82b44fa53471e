package raftlog

import "testing"

import "github.com/sirgallo/raftbid/pkg/command"


func TestEmptyLogSentinels(t *testing.T) {
	log := New()

	if log.LastIndex() != -1 { t.Fatalf("expected lastIndex -1, got %d", log.LastIndex()) }
	if log.LastTerm() != 0 { t.Fatalf("expected lastTerm 0, got %d", log.LastTerm()) }
	if log.Len() != 0 { t.Fatalf("expected length 0, got %d", log.Len()) }
}

func TestAppendAndGet(t *testing.T) {
	log := New()

	log.Append(&LogEntry{ Index: 0, Term: 1, Command: command.Command{ Kind: command.NewUser } })
	log.Append(&LogEntry{ Index: 1, Term: 1, Command: command.Command{ Kind: command.NewBid } })

	if log.LastIndex() != 1 { t.Fatalf("expected lastIndex 1, got %d", log.LastIndex()) }
	if log.LastTerm() != 1 { t.Fatalf("expected lastTerm 1, got %d", log.LastTerm()) }

	entry, ok := log.Get(0)
	if !ok || entry.Command.Kind != command.NewUser { t.Fatalf("unexpected entry at 0: %+v ok=%v", entry, ok) }

	_, ok = log.Get(5)
	if ok { t.Fatal("expected Get(5) to report absent") }
}

func TestTruncateFrom(t *testing.T) {
	log := New()

	for i := int64(0); i < 5; i++ {
		log.Append(&LogEntry{ Index: i, Term: 1 })
	}

	log.TruncateFrom(2)

	if log.LastIndex() != 1 { t.Fatalf("expected lastIndex 1 after truncating from 2, got %d", log.LastIndex()) }

	_, ok := log.Get(2)
	if ok { t.Fatal("expected index 2 to be gone after truncation") }
}

func TestTruncateFromOutOfRangeIsNoop(t *testing.T) {
	log := New()
	log.Append(&LogEntry{ Index: 0, Term: 1 })

	log.TruncateFrom(10)
	if log.LastIndex() != 0 { t.Fatalf("expected no-op truncation, got lastIndex %d", log.LastIndex()) }

	log.TruncateFrom(-1)
	if log.LastIndex() != 0 { t.Fatalf("expected no-op truncation on negative index, got lastIndex %d", log.LastIndex()) }
}

func TestSliceFromIndex(t *testing.T) {
	log := New()
	for i := int64(0); i < 4; i++ {
		log.Append(&LogEntry{ Index: i, Term: 1 })
	}

	slice := log.Slice(2)
	if len(slice) != 2 { t.Fatalf("expected 2 entries from index 2, got %d", len(slice)) }
	if slice[0].Index != 2 { t.Fatalf("expected first sliced entry at index 2, got %d", slice[0].Index) }

	empty := log.Slice(10)
	if len(empty) != 0 { t.Fatalf("expected empty slice past end of log, got %d entries", len(empty)) }
}

func TestNewFromEntriesRebuildsDenseLog(t *testing.T) {
	entries := []*LogEntry{
		{ Index: 0, Term: 1 },
		{ Index: 1, Term: 2 },
	}

	log := NewFromEntries(entries)

	if log.LastIndex() != 1 { t.Fatalf("expected lastIndex 1, got %d", log.LastIndex()) }
	if log.LastTerm() != 2 { t.Fatalf("expected lastTerm 2, got %d", log.LastTerm()) }
}
