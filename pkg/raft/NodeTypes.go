package raft

import "time"

import "github.com/sirgallo/raftbid/pkg/command"
import "github.com/sirgallo/raftbid/pkg/raftrpc"
import "github.com/sirgallo/raftbid/pkg/timer"


//=========================================== Node Config & Roles


type Role string

const (
	Follower  Role = "FOLLOWER"
	Candidate Role = "CANDIDATE"
	Leader    Role = "LEADER"
)

/*
	ClientErrorKind enumerates the only errors a client ever sees:
	told to retry elsewhere, told its accepted command was abandoned
	mid-flight, or told its request timed out waiting on a decision.
*/

type ClientErrorKind string

const (
	NotLeader ClientErrorKind = "NOT_LEADER"
	Deposed   ClientErrorKind = "DEPOSED"
	Timeout   ClientErrorKind = "TIMEOUT"
)

/*
	Config collects the one set of knobs a unified Node needs: identity,
	ports, timeout windows, peer addresses, data directory, and the
	executor's own configuration.
*/

type Config struct {
	Id           string
	ProtocolPort string
	ClientPort   string

	MinLeaderTimeout int
	MaxLeaderTimeout int

	MinElectionTimeout int
	MaxElectionTimeout int
	MinElectionDelay   int

	HeartbeatTimeout int

	Peers map[string]string // peer address -> NodeId

	DataDir        string
	ExecutorConfig string
}

type ClientResult struct {
	Ok         bool
	Result     command.Result
	ErrorKind  ClientErrorKind
	LeaderHint string
}

/*
	pendingClient is the sidecar entry for a command the leader has
	accepted but not yet applied. It is never attached to the LogEntry
	itself -- it lives only in Node.pendingClients, keyed by log index,
	and is resolved exactly once: on apply, on role loss, or (implied,
	since role loss always empties the map first) on truncation.
*/

type pendingClient struct {
	term     int64
	resultCh chan ClientResult
}

/*
	peerState tracks what the node knows about one other cluster
	member: its stable NodeId, its dial address, a liveness flag used
	only for diagnostics (never for quorum arithmetic, which always
	reasons over the full fixed peer set), and the leader-only
	replication cursors nextIndex/matchIndex. HeartbeatTimer is shared
	across candidate (resend RequestVote) and leader (resend
	AppendEntries) roles -- its onFire posts a role-agnostic event that
	the handler dispatches based on the node's current role.
*/

type peerState struct {
	Id   string
	Addr string

	Alive bool

	NextIndex  int64
	MatchIndex int64

	HeartbeatTimer *timer.Timer
}

/*
	Transport abstracts the Peer Transport + RPC Codec pair: a
	bidirectional, best-effort call to a named peer address. The real
	implementation (NodeTransport.go) dials over pooled gRPC
	connections; tests substitute an in-memory transport wired
	directly between Node instances in the same process.
*/

type Transport interface {
	SendAppendEntries(addr string, req *raftrpc.AppendEntriesRequest) (*raftrpc.AppendEntriesResponse, error)
	SendRequestVote(addr string, req *raftrpc.RequestVoteRequest) (*raftrpc.RequestVoteResponse, error)
}

//=========================================== Event Loop Events


type appendEntriesEvent struct {
	req  *raftrpc.AppendEntriesRequest
	resp chan *raftrpc.AppendEntriesResponse
}

type requestVoteEvent struct {
	req  *raftrpc.RequestVoteRequest
	resp chan *raftrpc.RequestVoteResponse
}

type appendEntriesReplyEvent struct {
	peerAddr string
	resp     *raftrpc.AppendEntriesResponse
	err      error
}

type voteReplyEvent struct {
	peerAddr string
	resp     *raftrpc.RequestVoteResponse
	err      error
}

type leaderTimeoutEvent struct{}

type electionTimeoutEvent struct{}

type heartbeatTimeoutEvent struct {
	peerAddr string
}

type clientSubmitEvent struct {
	cmd  command.Command
	resp chan ClientResult
}

const rpcCallTimeout = 150 * time.Millisecond
