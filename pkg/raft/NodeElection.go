package raft

import "time"

import "github.com/sirgallo/raftbid/pkg/raftrpc"


//=========================================== Candidate Protocol


func (n *Node) handleLeaderTimeout() {
	if n.role == Leader { return }

	n.tryStartElection()
}

func (n *Node) handleElectionTimeout() {
	if n.role != Candidate { return }

	n.tryStartElection()
}

/*
	tryStartElection honors minElectionDelay: a floor on how often this
	node may begin a new election, so a storm of back-to-back timeouts
	(e.g. a badly tuned cluster) doesn't churn terms pointlessly. An
	attempt inside the delay is ignored and the relevant timer re-armed
	so the node keeps trying at its normal cadence.
*/

func (n *Node) tryStartElection() {
	delay := time.Duration(n.config.MinElectionDelay) * time.Millisecond

	if !n.lastElectionAt.IsZero() && time.Since(n.lastElectionAt) < delay {
		if n.role == Candidate {
			n.electionTimeout.Reset(n.randomElectionTimeout())
		} else {
			n.leaderTimeout.Reset(n.randomLeaderTimeout())
		}

		return
	}

	n.startElection()
}

func (n *Node) startElection() {
	n.role = Candidate
	n.currentTerm++
	n.votedFor = n.id
	n.votesGathered = 1
	n.currentLeader = ""
	n.lastElectionAt = time.Now()

	n.persistState()

	n.leaderTimeout.Cancel()
	n.electionTimeout.Arm(n.randomElectionTimeout())

	n.Logger.Info("starting election", "term", n.currentTerm)

	if n.votesGathered > n.quorumFloor() {
		n.becomeLeader()
		return
	}

	for addr := range n.peers {
		n.sendRequestVoteTo(addr)
	}
}

func (n *Node) sendRequestVoteTo(addr string) {
	p, ok := n.peers[addr]
	if !ok { return }

	req := &raftrpc.RequestVoteRequest{
		SenderId:     n.id,
		Term:         n.currentTerm,
		LastLogIndex: n.log.LastIndex(),
		LastLogTerm:  n.log.LastTerm(),
	}

	go func() {
		resp, err := n.transport.SendRequestVote(addr, req)
		n.postEvent(voteReplyEvent{ peerAddr: addr, resp: resp, err: err })
	}()

	p.HeartbeatTimer.Reset(n.heartbeatInterval())
}

func (n *Node) handleHeartbeatTimeout(addr string) {
	switch n.role {
		case Candidate:
			n.sendRequestVoteTo(addr)
		case Leader:
			n.sendAppendEntriesTo(addr)
	}
}

func (n *Node) handleVoteReply(e voteReplyEvent) {
	if e.err != nil {
		n.markPeerDead(e.peerAddr)
		return
	}

	n.markPeerAlive(e.peerAddr)
	n.observeTerm(e.resp.Term)

	if n.role != Candidate { return }
	if e.resp.Term < n.currentTerm { return }
	if !e.resp.VoteGranted { return }

	n.votesGathered++

	if n.votesGathered > n.quorumFloor() { n.becomeLeader() }
}
