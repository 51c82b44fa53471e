package raft

import "context"

import "github.com/sirgallo/raftbid/pkg/command"
import "github.com/sirgallo/raftbid/pkg/raftlog"


//=========================================== Client Command Submission


/*
	SubmitCommand is the entry point pkg/request calls for an incoming
	client command. It blocks until the entry is applied, the node is
	revealed not to be leader, the leader is deposed before commit, or
	ctx expires -- never longer.
*/

func (n *Node) SubmitCommand(ctx context.Context, cmd command.Command) ClientResult {
	resp := make(chan ClientResult, 1)

	select {
		case n.events <- clientSubmitEvent{ cmd: cmd, resp: resp }:
		case <- ctx.Done():
			return ClientResult{ Ok: false, ErrorKind: Timeout }
		case <- n.stopCh:
			return ClientResult{ Ok: false, ErrorKind: Deposed }
	}

	select {
		case res := <- resp:
			return res
		case <- ctx.Done():
			return ClientResult{ Ok: false, ErrorKind: Timeout }
	}
}

func (n *Node) handleClientSubmit(cmd command.Command, resp chan ClientResult) {
	if n.role != Leader {
		resp <- ClientResult{ Ok: false, ErrorKind: NotLeader, LeaderHint: n.currentLeader }
		return
	}

	index := n.log.LastIndex() + 1
	entry := &raftlog.LogEntry{ Index: index, Term: n.currentTerm, Command: cmd }

	n.log.Append(entry)
	n.persistAppend(entry)

	n.pendingClients[index] = &pendingClient{ term: n.currentTerm, resultCh: resp }

	/*
		Fast path: peers already caught up through the previous
		commitIndex get this entry immediately rather than waiting for
		their heartbeat-timeout to come around.
	*/
	for addr, p := range n.peers {
		if p.MatchIndex == n.commitIndex { n.sendAppendEntriesTo(addr) }
	}

	/*
		With no peers at all, matchIndex majority is met by self alone --
		advance commitIndex directly instead of waiting on a peer reply
		that will never arrive.
	*/
	n.advanceCommitIndex()
}

func (n *Node) resolvePendingClient(index int64, res ClientResult) {
	pc, ok := n.pendingClients[index]
	if !ok { return }

	select {
		case pc.resultCh <- res:
		default:
	}

	delete(n.pendingClients, index)
}

func (n *Node) failPendingClients(kind ClientErrorKind) {
	for index, pc := range n.pendingClients {
		select {
			case pc.resultCh <- ClientResult{ Ok: false, ErrorKind: kind }:
			default:
		}

		delete(n.pendingClients, index)
	}
}
