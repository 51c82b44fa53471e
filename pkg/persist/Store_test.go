package persist

import "path/filepath"
import "testing"

import "github.com/sirgallo/raftbid/pkg/command"
import "github.com/sirgallo/raftbid/pkg/raftlog"


func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "raft.db"))
	if err != nil { t.Fatalf("opening test store: %v", err) }

	t.Cleanup(func() { store.Close() })

	return store
}

func TestLoadStateDefaultsOnFreshStore(t *testing.T) {
	store := newTestStore(t)

	term, votedFor, err := store.LoadState()
	if err != nil { t.Fatalf("LoadState: %v", err) }

	if term != 0 || votedFor != "" {
		t.Fatalf("expected fresh store to report term=0 votedFor=\"\", got term=%d votedFor=%q", term, votedFor)
	}
}

func TestSaveStateRoundTrips(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveState(7, "node-b"); err != nil { t.Fatalf("SaveState: %v", err) }

	term, votedFor, err := store.LoadState()
	if err != nil { t.Fatalf("LoadState: %v", err) }

	if term != 7 || votedFor != "node-b" {
		t.Fatalf("expected term=7 votedFor=node-b, got term=%d votedFor=%q", term, votedFor)
	}
}

func TestAppendAndLoadLog(t *testing.T) {
	store := newTestStore(t)

	entries := []*raftlog.LogEntry{
		{ Index: 0, Term: 1, Command: command.Command{ Kind: command.NewUser } },
		{ Index: 1, Term: 1, Command: command.Command{ Kind: command.NewBid } },
	}

	if err := store.AppendLogEntries(entries); err != nil { t.Fatalf("AppendLogEntries: %v", err) }

	loaded, err := store.LoadLog()
	if err != nil { t.Fatalf("LoadLog: %v", err) }

	if len(loaded) != 2 { t.Fatalf("expected 2 entries, got %d", len(loaded)) }
	if loaded[0].Index != 0 || loaded[1].Index != 1 { t.Fatalf("entries out of order: %+v", loaded) }
}

func TestTruncateLogFrom(t *testing.T) {
	store := newTestStore(t)

	entries := []*raftlog.LogEntry{
		{ Index: 0, Term: 1 },
		{ Index: 1, Term: 1 },
		{ Index: 2, Term: 2 },
	}

	if err := store.AppendLogEntries(entries); err != nil { t.Fatalf("AppendLogEntries: %v", err) }
	if err := store.TruncateLogFrom(1); err != nil { t.Fatalf("TruncateLogFrom: %v", err) }

	loaded, err := store.LoadLog()
	if err != nil { t.Fatalf("LoadLog: %v", err) }

	if len(loaded) != 1 || loaded[0].Index != 0 {
		t.Fatalf("expected only index 0 to survive truncation from 1, got %+v", loaded)
	}
}
