package raftlog

import "github.com/sirgallo/raftbid/pkg/command"


//=========================================== Log Store


/*
	Log is the append-only, rewritable-suffix ordered sequence of log
	entries. Entries are stored densely -- entry i always lives at
	Index i -- so Get/TermAt are O(1).

	Log is owned exclusively by the Raft Node's single event-loop actor;
	no other component mutates it, and it carries no internal locking
	of its own.
*/

type Log struct {
	entries []*LogEntry
}

func New() *Log {
	return &Log{ entries: []*LogEntry{} }
}

/*
	NewFromEntries rebuilds a Log from durable storage on restart.
*/

func NewFromEntries(entries []*LogEntry) *Log {
	return &Log{ entries: entries }
}

func (l *Log) Append(entry *LogEntry) {
	l.entries = append(l.entries, entry)
}

/*
	TruncateFrom deletes the entry at index and every entry after it --
	the leader never calls this; only a follower reconciling a conflict
	with the leader's log does.
*/

func (l *Log) TruncateFrom(index int64) {
	if index < 0 || index >= int64(len(l.entries)) { return }
	l.entries = l.entries[:index]
}

func (l *Log) Get(index int64) (*LogEntry, bool) {
	if index < 0 || index >= int64(len(l.entries)) { return nil, false }
	return l.entries[index], true
}

func (l *Log) TermAt(index int64) (int64, bool) {
	entry, ok := l.Get(index)
	if !ok { return 0, false }

	return entry.Term, true
}

/*
	LastIndex/LastTerm use explicit empty-log sentinels: lastIndex = -1
	and lastTerm = 0 when the log is empty, so callers never have to
	special-case indexing into an empty log.
*/

func (l *Log) LastIndex() int64 {
	return int64(len(l.entries)) - 1
}

func (l *Log) LastTerm() int64 {
	if len(l.entries) == 0 { return 0 }
	return l.entries[len(l.entries)-1].Term
}

func (l *Log) Len() int64 {
	return int64(len(l.entries))
}

/*
	Slice returns every entry at or after fromIndex (inclusive), or an
	empty slice if fromIndex is past the end of the log.
*/

func (l *Log) Slice(fromIndex int64) []*LogEntry {
	if fromIndex < 0 { fromIndex = 0 }
	if fromIndex >= int64(len(l.entries)) { return []*LogEntry{} }

	return l.entries[fromIndex:]
}

/*
	Entries returns the full log as the backing slice, not a copy.
*/

func (l *Log) Entries() []*LogEntry {
	return l.entries
}

func (l *Log) Commands() []command.Command {
	transform := func(entry *LogEntry) command.Command { return entry.Command }
	return mapEntries(l.entries, transform)
}

func mapEntries(entries []*LogEntry, transform func(*LogEntry) command.Command) []command.Command {
	out := make([]command.Command, 0, len(entries))
	for _, e := range entries {
		out = append(out, transform(e))
	}

	return out
}
