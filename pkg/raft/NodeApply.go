package raft

//=========================================== Apply Loop


/*
	applyCommitted invokes the Command Executor on every entry between
	lastApplied+1 and commitIndex, strictly in order, exactly once.
	lastIndex is captured once before the loop begins: it is simply
	commitIndex at the moment apply starts, immune to a concurrent
	commitIndex advance moving the goalposts mid-loop, since this whole
	method runs inside the single actor.
*/

func (n *Node) applyCommitted() {
	lastIndex := n.commitIndex

	for n.lastApplied < lastIndex {
		n.lastApplied++

		entry, ok := n.log.Get(n.lastApplied)
		if !ok { break }

		result := n.executor.Apply(entry.Command)

		n.resolvePendingClient(n.lastApplied, ClientResult{ Ok: result.Ok, Result: result })
	}
}
