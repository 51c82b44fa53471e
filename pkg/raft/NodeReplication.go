package raft

import "sort"

import "github.com/sirgallo/raftbid/pkg/raftrpc"


//=========================================== Leader Protocol


func (n *Node) becomeLeader() {
	n.role = Leader
	n.currentLeader = n.id
	n.electionTimeout.Cancel()

	lastIndex := n.log.LastIndex()

	for _, p := range n.peers {
		p.NextIndex = lastIndex + 1
		p.MatchIndex = -1
	}

	n.Logger.Info("became leader", "term", n.currentTerm)

	for addr := range n.peers {
		n.sendAppendEntriesTo(addr)
	}

	n.advanceCommitIndex()
}

func (n *Node) sendAppendEntriesTo(addr string) {
	p, ok := n.peers[addr]
	if !ok { return }

	prevLogIndex := p.NextIndex - 1
	prevLogTerm, _ := n.log.TermAt(prevLogIndex)
	entries := n.log.Slice(p.NextIndex)

	req := &raftrpc.AppendEntriesRequest{
		SenderId:          n.id,
		Term:              n.currentTerm,
		PrevLogIndex:      prevLogIndex,
		PrevLogTerm:       prevLogTerm,
		Entries:           toWireEntries(entries),
		LeaderCommitIndex: n.commitIndex,
	}

	go func() {
		resp, err := n.transport.SendAppendEntries(addr, req)
		n.postEvent(appendEntriesReplyEvent{ peerAddr: addr, resp: resp, err: err })
	}()

	p.HeartbeatTimer.Reset(n.heartbeatInterval())
}

func (n *Node) handleAppendEntriesReply(e appendEntriesReplyEvent) {
	if e.err != nil {
		n.markPeerDead(e.peerAddr)
		return
	}

	n.markPeerAlive(e.peerAddr)
	n.observeTerm(e.resp.Term)

	if n.role != Leader { return }
	if e.resp.Term < n.currentTerm { return }

	p, ok := n.peers[e.peerAddr]
	if !ok { return }

	if e.resp.Success {
		p.MatchIndex = e.resp.MatchIndex
		p.NextIndex = p.MatchIndex + 1

		if n.log.LastIndex() > p.MatchIndex { n.sendAppendEntriesTo(e.peerAddr) }
	} else {
		if p.NextIndex > 0 { p.NextIndex-- }

		n.sendAppendEntriesTo(e.peerAddr)
	}

	n.advanceCommitIndex()
}

/*
	advanceCommitIndex sorts every known matchIndex (self always counts
	as matched through its own last log index) and takes the value at
	the majority position. commitIndex only advances to that candidate
	if its entry was written in the leader's own current term: a
	leader can commit an entry from an earlier term only as a side
	effect of committing a later entry, never directly.
*/

func (n *Node) advanceCommitIndex() {
	clusterSize := len(n.peers) + 1
	majorityCount := clusterSize/2 + 1

	matchIndexes := make([]int64, 0, clusterSize)
	matchIndexes = append(matchIndexes, n.log.LastIndex())

	for _, p := range n.peers {
		matchIndexes = append(matchIndexes, p.MatchIndex)
	}

	sort.Slice(matchIndexes, func(i, j int) bool { return matchIndexes[i] > matchIndexes[j] })

	candidate := matchIndexes[majorityCount-1]
	if candidate <= n.commitIndex { return }

	term, ok := n.log.TermAt(candidate)
	if !ok || term != n.currentTerm { return }

	n.commitIndex = candidate
	n.applyCommitted()
}
