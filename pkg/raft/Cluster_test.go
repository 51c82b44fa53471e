package raft

import "context"
import "fmt"
import "path/filepath"
import "sync"
import "testing"
import "time"

import "github.com/sirgallo/raftbid/pkg/command"
import "github.com/sirgallo/raftbid/pkg/executor"
import "github.com/sirgallo/raftbid/pkg/persist"
import "github.com/sirgallo/raftbid/pkg/raftlog"
import "github.com/sirgallo/raftbid/pkg/raftrpc"


//=========================================== In-Memory Cluster Harness


/*
	memTransport substitutes for gRPC in tests: each address resolves
	directly to the in-process Node registered under it, so an
	AppendEntries/RequestVote "send" is just a direct synchronous call
	through the same RaftTransportServer surface the real gRPC server
	would invoke, exercising the exact same event-loop path.
*/

type memTransport struct {
	mutex sync.RWMutex
	nodes map[string]*Node
}

func newMemTransport() *memTransport {
	return &memTransport{ nodes: make(map[string]*Node) }
}

func (t *memTransport) register(addr string, n *Node) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.nodes[addr] = n
}

func (t *memTransport) resolve(addr string) (*Node, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	n, ok := t.nodes[addr]
	if !ok { return nil, fmt.Errorf("no node registered at %s", addr) }

	return n, nil
}

func (t *memTransport) SendAppendEntries(addr string, req *raftrpc.AppendEntriesRequest) (*raftrpc.AppendEntriesResponse, error) {
	n, err := t.resolve(addr)
	if err != nil { return nil, err }

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	return n.AppendEntries(ctx, req)
}

func (t *memTransport) SendRequestVote(addr string, req *raftrpc.RequestVoteRequest) (*raftrpc.RequestVoteResponse, error) {
	n, err := t.resolve(addr)
	if err != nil { return nil, err }

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	return n.RequestVote(ctx, req)
}

/*
	testCluster builds size nodes addressed "node-0".."node-N", all
	sharing one memTransport, each with its own temp-dir persist store
	and auction executor. Timeout windows are kept small so tests run
	quickly without becoming flaky on a loaded machine.
*/

type testCluster struct {
	nodes     []*Node
	addrs     []string
	transport *memTransport
}

func newTestCluster(t *testing.T, size int) *testCluster {
	t.Helper()

	transport := newMemTransport()
	cluster := &testCluster{ transport: transport }

	addrs := make([]string, size)
	for i := 0; i < size; i++ { addrs[i] = fmt.Sprintf("node-%d", i) }
	cluster.addrs = addrs

	for i := 0; i < size; i++ {
		peers := make(map[string]string)
		for j := 0; j < size; j++ {
			if j == i { continue }
			peers[addrs[j]] = addrs[j]
		}

		store, err := persist.Open(filepath.Join(t.TempDir(), fmt.Sprintf("raft-%d.db", i)))
		if err != nil { t.Fatalf("opening store %d: %v", i, err) }
		t.Cleanup(func() { store.Close() })

		auctionStore, err := executor.NewAuctionStore(filepath.Join(t.TempDir(), fmt.Sprintf("auction-%d.db", i)))
		if err != nil { t.Fatalf("opening auction store %d: %v", i, err) }
		t.Cleanup(func() { auctionStore.Close() })

		config := Config{
			Id:                 addrs[i],
			MinLeaderTimeout:   60,
			MaxLeaderTimeout:   120,
			MinElectionTimeout: 60,
			MaxElectionTimeout: 120,
			MinElectionDelay:   10,
			HeartbeatTimeout:   20,
			Peers:              peers,
		}

		node := New(config, store, auctionStore, transport)
		transport.register(addrs[i], node)

		cluster.nodes = append(cluster.nodes, node)
	}

	return cluster
}

func (c *testCluster) start(t *testing.T) {
	t.Helper()

	for _, n := range c.nodes {
		if err := n.Start(); err != nil { t.Fatalf("starting node: %v", err) }
	}

	t.Cleanup(func() {
		for _, n := range c.nodes { n.Stop() }
	})
}

/*
	awaitLeader polls every node's status until exactly one reports
	Leader, or fails the test after timeout. Polling rather than a
	fixed sleep keeps the test fast on a quiet machine and still
	reliable under load.
*/

func (c *testCluster) awaitLeader(t *testing.T, timeout time.Duration) *Node {
	t.Helper()

	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		var leaders []*Node

		for _, n := range c.nodes {
			if n.GetStatus().Role == Leader { leaders = append(leaders, n) }
		}

		if len(leaders) == 1 { return leaders[0] }

		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("no single leader emerged before timeout")
	return nil
}

//=========================================== Tests


func TestThreeNodeClusterElectsOneLeader(t *testing.T) {
	cluster := newTestCluster(t, 3)
	cluster.start(t)

	leader := cluster.awaitLeader(t, 2*time.Second)

	term := leader.GetStatus().CurrentTerm

	for _, n := range cluster.nodes {
		status := n.GetStatus()

		if n == leader {
			if status.Role != Leader { t.Fatalf("expected leader to remain Leader, got %v", status.Role) }
			continue
		}

		if status.Role == Leader { t.Fatalf("expected at most one leader, found second: %s", n.id) }
		if status.CurrentTerm != term { t.Fatalf("expected matching term %d, got %d on %s", term, status.CurrentTerm, n.id) }
	}
}

func TestSingleNodeClusterBecomesLeaderAndCommitsImmediately(t *testing.T) {
	cluster := newTestCluster(t, 1)
	cluster.start(t)

	leader := cluster.awaitLeader(t, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := leader.SubmitCommand(ctx, command.Command{
		Kind: command.NewUser,
		NewUser: &command.NewUserPayload{ Username: "solo", Password: "pw" },
	})

	if result.ErrorKind != "" { t.Fatalf("unexpected error kind: %v", result.ErrorKind) }
	if !result.Result.Ok { t.Fatalf("expected command to apply successfully, got %+v", result.Result) }

	if leader.GetStatus().CommitIndex != 0 { t.Fatalf("expected commitIndex 0 after one command, got %d", leader.GetStatus().CommitIndex) }
}

func TestCommandReplicatesAndAppliesOnEveryNode(t *testing.T) {
	cluster := newTestCluster(t, 3)
	cluster.start(t)

	leader := cluster.awaitLeader(t, 2*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result := leader.SubmitCommand(ctx, command.Command{
		Kind: command.NewUser,
		NewUser: &command.NewUserPayload{ Username: "alice", Password: "pw" },
	})

	if result.ErrorKind != "" { t.Fatalf("unexpected error kind: %v", result.ErrorKind) }
	if !result.Result.Ok { t.Fatalf("expected successful apply, got %+v", result.Result) }

	deadline := time.Now().Add(2 * time.Second)
	for {
		allCommitted := true
		for _, n := range cluster.nodes {
			if n.GetStatus().CommitIndex < 0 { allCommitted = false }
		}

		if allCommitted { break }
		if time.Now().After(deadline) { t.Fatal("not every node committed the entry before timeout") }

		time.Sleep(10 * time.Millisecond)
	}
}

func TestNonLeaderRejectsClientCommandWithLeaderHint(t *testing.T) {
	cluster := newTestCluster(t, 3)
	cluster.start(t)

	leader := cluster.awaitLeader(t, 2*time.Second)

	var follower *Node
	for _, n := range cluster.nodes {
		if n != leader { follower = n; break }
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := follower.SubmitCommand(ctx, command.Command{ Kind: command.NewUser, NewUser: &command.NewUserPayload{ Username: "bob", Password: "pw" } })

	if result.ErrorKind != NotLeader { t.Fatalf("expected NOT_LEADER, got %+v", result) }
}

/*
	Replaying the same AppendEntries request twice must leave the log
	unchanged after the first application.
*/

func TestDuplicateAppendEntriesIsIdempotent(t *testing.T) {
	cluster := newTestCluster(t, 2)
	cluster.start(t)

	leader := cluster.awaitLeader(t, 2*time.Second)

	var follower *Node
	for _, n := range cluster.nodes {
		if n != leader { follower = n; break }
	}

	term := leader.GetStatus().CurrentTerm

	entries := []*raftlog.LogEntry{
		{ Index: 0, Term: term, Command: command.Command{ Kind: command.NewUser, NewUser: &command.NewUserPayload{ Username: "carl", Password: "pw" } } },
	}

	req := &raftrpc.AppendEntriesRequest{
		SenderId:          leader.id,
		Term:              term,
		PrevLogIndex:      -1,
		PrevLogTerm:       0,
		Entries:           toWireEntries(entries),
		LeaderCommitIndex: -1,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	first, err := follower.AppendEntries(ctx, req)
	if err != nil { t.Fatalf("first AppendEntries: %v", err) }

	second, err := follower.AppendEntries(ctx, req)
	if err != nil { t.Fatalf("second AppendEntries: %v", err) }

	if first.MatchIndex != second.MatchIndex {
		t.Fatalf("expected idempotent matchIndex, got %d then %d", first.MatchIndex, second.MatchIndex)
	}

	if follower.GetStatus().Role != Follower { t.Fatalf("expected follower to remain Follower") }
	if follower.log.Len() != 1 { t.Fatalf("expected exactly one entry after duplicate append, got %d", follower.log.Len()) }
}
