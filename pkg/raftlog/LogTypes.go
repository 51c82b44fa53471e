package raftlog

import "github.com/sirgallo/raftbid/pkg/command"


/*
	LogEntry pairs an index and term with the command it carries. The
	client callback attached to an entry on the leader that accepted it
	is deliberately NOT a field here: it is a leader-local concern that
	must never be serialized onto the wire or into the durable log, so
	it lives in a sidecar map on the Node instead.
*/

type LogEntry struct {
	Index   int64           `json:"index"`
	Term    int64           `json:"term"`
	Command command.Command `json:"command"`
}
