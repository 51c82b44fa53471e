package raft

import "github.com/sirgallo/raftbid/pkg/command"
import "github.com/sirgallo/raftbid/pkg/raftlog"
import "github.com/sirgallo/raftbid/pkg/raftrpc"
import "github.com/sirgallo/raftbid/pkg/utils"


//=========================================== Wire <-> Log Entry Codec


/*
	The wire LogEntry carries Command as an opaque JSON string, so the
	transport is invariant to the command payload's encoding and the
	core only ever treats Command as an opaque payload it replicates.
	These helpers are the one place that crosses between the two
	representations.
*/

func toWireEntries(entries []*raftlog.LogEntry) []*raftrpc.LogEntry {
	out := make([]*raftrpc.LogEntry, 0, len(entries))

	for _, entry := range entries {
		encoded, err := utils.EncodeStructToString(entry.Command)
		if err != nil { continue }

		out = append(out, &raftrpc.LogEntry{ Index: entry.Index, Term: entry.Term, Command: encoded })
	}

	return out
}

func fromWireEntries(wire []*raftrpc.LogEntry) []*raftlog.LogEntry {
	out := make([]*raftlog.LogEntry, 0, len(wire))

	for _, w := range wire {
		cmd, err := utils.DecodeStringToStruct[command.Command](w.Command)
		if err != nil { continue }

		out = append(out, &raftlog.LogEntry{ Index: w.Index, Term: w.Term, Command: *cmd })
	}

	return out
}
