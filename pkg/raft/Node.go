package raft

import "fmt"
import "math/rand"
import "sync"
import "time"

import "github.com/sirgallo/raftbid/pkg/clog"
import "github.com/sirgallo/raftbid/pkg/executor"
import "github.com/sirgallo/raftbid/pkg/persist"
import "github.com/sirgallo/raftbid/pkg/raftlog"
import "github.com/sirgallo/raftbid/pkg/raftrpc"
import "github.com/sirgallo/raftbid/pkg/timer"


//=========================================== Raft Node


/*
	Node owns RaftState and is the single event-loop actor through
	which every RPC handler, timer fire, and client submission is
	serialized: one goroutine draining a channel of tagged events,
	never two handlers observing intermediate state. It embeds
	UnimplementedRaftTransportServer so
	it satisfies raftrpc.RaftTransportServer directly and InstallSnapshot
	returns Unimplemented without any code here.
*/

type Node struct {
	raftrpc.UnimplementedRaftTransportServer

	id     string
	config Config
	rand   *rand.Rand

	// persistent
	currentTerm int64
	votedFor    string
	log         *raftlog.Log

	// volatile
	commitIndex   int64
	lastApplied   int64
	role          Role
	currentLeader string
	votesGathered int

	lastElectionAt time.Time

	peers map[string]*peerState

	leaderTimeout   *timer.Timer
	electionTimeout *timer.Timer

	pendingClients map[int64]*pendingClient

	store     *persist.Store
	executor  executor.Executor
	transport Transport
	Logger    *clog.Log

	events  chan interface{}
	stopCh  chan struct{}
	stopped chan struct{}
	stopOnce sync.Once
}

func New(config Config, store *persist.Store, exec executor.Executor, transport Transport) *Node {
	n := &Node{
		id:     config.Id,
		config: config,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),

		role:        Follower,
		commitIndex: -1,
		lastApplied: -1,

		peers: make(map[string]*peerState, len(config.Peers)),

		pendingClients: make(map[int64]*pendingClient),

		store:     store,
		executor:  exec,
		transport: transport,
		Logger:    clog.New(fmt.Sprintf("Node(%s)", config.Id)),

		events:  make(chan interface{}, 256),
		stopCh:  make(chan struct{}),
		stopped: make(chan struct{}),
	}

	for addr, nodeId := range config.Peers {
		addr := addr

		p := &peerState{ Id: nodeId, Addr: addr }
		p.HeartbeatTimer = timer.New(func() { n.postEvent(heartbeatTimeoutEvent{ peerAddr: addr }) })

		n.peers[addr] = p
	}

	n.leaderTimeout = timer.New(func() { n.postEvent(leaderTimeoutEvent{}) })
	n.electionTimeout = timer.New(func() { n.postEvent(electionTimeoutEvent{}) })

	return n
}

/*
	Start rebuilds volatile state from durable storage and begins the
	event loop. A node is started exactly once.
*/

func (n *Node) Start() error {
	currentTerm, votedFor, loadErr := n.store.LoadState()
	if loadErr != nil { return fmt.Errorf("loading raft state: %w", loadErr) }

	entries, logErr := n.store.LoadLog()
	if logErr != nil { return fmt.Errorf("loading raft log: %w", logErr) }

	n.currentTerm = currentTerm
	n.votedFor = votedFor
	n.log = raftlog.NewFromEntries(entries)

	n.Logger.Info("starting node", "term", n.currentTerm, "logLength", n.log.Len(), "executorConfig", n.config.ExecutorConfig)

	go n.run()

	n.leaderTimeout.Arm(n.randomLeaderTimeout())

	return nil
}

func (n *Node) Stop() {
	n.stopOnce.Do(func() {
		close(n.stopCh)
		<-n.stopped

		n.leaderTimeout.Cancel()
		n.electionTimeout.Cancel()
		n.cancelAllHeartbeatTimers()
	})
}

func (n *Node) run() {
	defer close(n.stopped)

	for {
		select {
			case ev := <-n.events:
				n.handleEvent(ev)
			case <-n.stopCh:
				return
		}
	}
}

func (n *Node) handleEvent(ev interface{}) {
	switch e := ev.(type) {
		case appendEntriesEvent:
			e.resp <- n.handleAppendEntries(e.req)
		case requestVoteEvent:
			e.resp <- n.handleRequestVote(e.req)
		case appendEntriesReplyEvent:
			n.handleAppendEntriesReply(e)
		case voteReplyEvent:
			n.handleVoteReply(e)
		case leaderTimeoutEvent:
			n.handleLeaderTimeout()
		case electionTimeoutEvent:
			n.handleElectionTimeout()
		case heartbeatTimeoutEvent:
			n.handleHeartbeatTimeout(e.peerAddr)
		case clientSubmitEvent:
			n.handleClientSubmit(e.cmd, e.resp)
		case statusEvent:
			n.handleStatus(e.resp)
	}
}

/*
	postEvent is how timer callbacks and transport-reply goroutines --
	both running outside the actor -- hand work to it. It never blocks
	past node shutdown: a node that has stopped silently drops events
	rather than leaking the sending goroutine.
*/

func (n *Node) postEvent(ev interface{}) {
	select {
		case n.events <- ev:
		case <-n.stopCh:
	}
}

//=========================================== Shared Helpers


func (n *Node) randomLeaderTimeout() time.Duration {
	return timer.RandomDuration(n.rand, n.config.MinLeaderTimeout, n.config.MaxLeaderTimeout)
}

func (n *Node) randomElectionTimeout() time.Duration {
	return timer.RandomDuration(n.rand, n.config.MinElectionTimeout, n.config.MaxElectionTimeout)
}

func (n *Node) heartbeatInterval() time.Duration {
	return time.Duration(n.config.HeartbeatTimeout) * time.Millisecond
}

func (n *Node) cancelAllHeartbeatTimers() {
	for _, p := range n.peers {
		p.HeartbeatTimer.Cancel()
	}
}

func (n *Node) markPeerAlive(addr string) {
	if p, ok := n.peers[addr]; ok {
		if !p.Alive { n.Logger.Info("peer reachable again", addr) }
		p.Alive = true
	}
}

func (n *Node) markPeerDead(addr string) {
	if p, ok := n.peers[addr]; ok {
		if p.Alive { n.Logger.Warn("peer unreachable", addr) }
		p.Alive = false
	}
}

/*
	persistState durably saves currentTerm/votedFor before any reply or
	outgoing RPC that depends on them is allowed to leave the node.
	A write failure here is a fatal error --
	the node can no longer safely participate and must abort for
	external supervision to restart it.
*/

func (n *Node) persistState() {
	if err := n.store.SaveState(n.currentTerm, n.votedFor); err != nil { n.fatal(err) }
}

func (n *Node) persistAppend(entry *raftlog.LogEntry) {
	if err := n.store.AppendLogEntries([]*raftlog.LogEntry{ entry }); err != nil { n.fatal(err) }
}

func (n *Node) persistTruncateFrom(index int64) {
	if err := n.store.TruncateLogFrom(index); err != nil { n.fatal(err) }
}

func (n *Node) fatal(err error) {
	n.Logger.Error("fatal raft storage error, aborting node", err)
	panic(err)
}
