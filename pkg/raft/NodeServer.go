package raft

import "context"

import "github.com/sirgallo/raftbid/pkg/raftlog"
import "github.com/sirgallo/raftbid/pkg/raftrpc"


//=========================================== RaftTransportServer


/*
	AppendEntries and RequestVote satisfy raftrpc.RaftTransportServer --
	the gRPC-facing surface. Each hands its request to the actor as an
	event and blocks on a one-shot response channel, so the RPC
	handler itself never touches RaftState directly.
*/

func (n *Node) AppendEntries(ctx context.Context, req *raftrpc.AppendEntriesRequest) (*raftrpc.AppendEntriesResponse, error) {
	resp := make(chan *raftrpc.AppendEntriesResponse, 1)

	select {
		case n.events <- appendEntriesEvent{ req: req, resp: resp }:
		case <- ctx.Done():
			return nil, ctx.Err()
		case <- n.stopCh:
			return nil, context.Canceled
	}

	select {
		case out := <- resp:
			return out, nil
		case <- ctx.Done():
			return nil, ctx.Err()
	}
}

func (n *Node) RequestVote(ctx context.Context, req *raftrpc.RequestVoteRequest) (*raftrpc.RequestVoteResponse, error) {
	resp := make(chan *raftrpc.RequestVoteResponse, 1)

	select {
		case n.events <- requestVoteEvent{ req: req, resp: resp }:
		case <- ctx.Done():
			return nil, ctx.Err()
		case <- n.stopCh:
			return nil, context.Canceled
	}

	select {
		case out := <- resp:
			return out, nil
		case <- ctx.Done():
			return nil, ctx.Err()
	}
}

//=========================================== Universal Term Rule


/*
	observeTerm implements the universal rule: any message carrying a
	term greater than currentTerm forces an immediate step-down,
	regardless of role. It does nothing for term <= currentTerm --
	callers discard stale-term messages themselves (request handlers
	before calling it, reply handlers right after), and equal-term
	messages are handled by role-specific logic.
*/

func (n *Node) observeTerm(term int64) {
	if term > n.currentTerm { n.stepDown(term) }
}

func (n *Node) stepDown(term int64) {
	prevRole := n.role

	n.role = Follower
	n.currentTerm = term
	n.votedFor = ""
	n.currentLeader = ""
	n.votesGathered = 0

	if prevRole == Candidate { n.electionTimeout.Cancel() }
	if prevRole == Candidate || prevRole == Leader { n.cancelAllHeartbeatTimers() }

	n.persistState()
	n.leaderTimeout.Reset(n.randomLeaderTimeout())

	n.failPendingClients(Deposed)
}

//=========================================== Follower Handling


func (n *Node) handleAppendEntries(req *raftrpc.AppendEntriesRequest) *raftrpc.AppendEntriesResponse {
	if req.Term < n.currentTerm {
		return &raftrpc.AppendEntriesResponse{ SenderId: n.id, Term: n.currentTerm, Success: false, MatchIndex: n.commitIndex }
	}

	n.observeTerm(req.Term)

	/*
		A candidate that sees an AppendEntries at its own term has lost
		a concurrent election to the sender; step down without a term
		change.
	*/
	if n.role == Candidate && req.Term == n.currentTerm {
		n.role = Follower
		n.votesGathered = 0
		n.electionTimeout.Cancel()
		n.cancelAllHeartbeatTimers()
	}

	if req.PrevLogIndex >= 0 {
		termAtPrev, ok := n.log.TermAt(req.PrevLogIndex)
		if !ok || termAtPrev != req.PrevLogTerm {
			return &raftrpc.AppendEntriesResponse{ SenderId: n.id, Term: n.currentTerm, Success: false, MatchIndex: n.commitIndex }
		}
	}

	incoming := fromWireEntries(req.Entries)

	for i, entry := range incoming {
		index := req.PrevLogIndex + int64(i) + 1

		existing, ok := n.log.Get(index)
		if ok && existing.Term != entry.Term {
			n.log.TruncateFrom(index)
			n.persistTruncateFrom(index)
			ok = false
		}

		if !ok {
			appended := &raftlog.LogEntry{ Index: index, Term: entry.Term, Command: entry.Command }
			n.log.Append(appended)
			n.persistAppend(appended)
		}
	}

	n.currentLeader = req.SenderId
	n.leaderTimeout.Reset(n.randomLeaderTimeout())

	lastNewIndex := req.PrevLogIndex + int64(len(incoming))

	if req.LeaderCommitIndex > n.commitIndex {
		newCommit := req.LeaderCommitIndex
		if lastNewIndex < newCommit { newCommit = lastNewIndex }

		n.commitIndex = newCommit
		n.applyCommitted()
	}

	return &raftrpc.AppendEntriesResponse{ SenderId: n.id, Term: n.currentTerm, Success: true, MatchIndex: lastNewIndex }
}

func (n *Node) handleRequestVote(req *raftrpc.RequestVoteRequest) *raftrpc.RequestVoteResponse {
	if req.Term < n.currentTerm {
		return &raftrpc.RequestVoteResponse{ SenderId: n.id, Term: n.currentTerm, VoteGranted: false }
	}

	n.observeTerm(req.Term)

	/*
		Candidate log up-to-date-ness check: a voter only grants its vote
		to a candidate whose log is at least as up to date as its own --
		this is what keeps a lagging candidate from ever winning and then
		overwriting committed entries.
	*/
	upToDate := req.LastLogTerm > n.log.LastTerm() ||
		(req.LastLogTerm == n.log.LastTerm() && req.LastLogIndex >= n.log.LastIndex())

	canVote := n.votedFor == "" || n.votedFor == req.SenderId

	if canVote && upToDate {
		n.votedFor = req.SenderId
		n.persistState()
		n.leaderTimeout.Reset(n.randomLeaderTimeout())

		return &raftrpc.RequestVoteResponse{ SenderId: n.id, Term: n.currentTerm, VoteGranted: true }
	}

	return &raftrpc.RequestVoteResponse{ SenderId: n.id, Term: n.currentTerm, VoteGranted: false }
}
