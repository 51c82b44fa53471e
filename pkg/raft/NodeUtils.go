package raft

//=========================================== Shared Quorum Math


/*
	quorumFloor is floor(clusterSize/2); a candidate becomes leader once
	votesGathered exceeds this (i.e. reaches a true majority counting
	itself).
*/

func (n *Node) quorumFloor() int {
	clusterSize := len(n.peers) + 1
	return clusterSize / 2
}

//=========================================== Status Queries


/*
	Status is a point-in-time snapshot of the fields external callers
	(pkg/request's health surface, cluster tests) legitimately need to
	read. It is fetched through the event loop rather than read off the
	struct directly -- RaftState belongs to the actor goroutine alone.
*/

type Status struct {
	Role          Role
	CurrentTerm   int64
	CurrentLeader string
	CommitIndex   int64
}

type statusEvent struct {
	resp chan Status
}

func (n *Node) GetStatus() Status {
	resp := make(chan Status, 1)

	select {
		case n.events <- statusEvent{ resp: resp }:
		case <- n.stopCh:
			return Status{}
	}

	select {
		case s := <- resp:
			return s
		case <- n.stopCh:
			return Status{}
	}
}

func (n *Node) handleStatus(resp chan Status) {
	resp <- Status{
		Role:          n.role,
		CurrentTerm:   n.currentTerm,
		CurrentLeader: n.currentLeader,
		CommitIndex:   n.commitIndex,
	}
}
