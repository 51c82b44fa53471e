package raft

import "context"

import "github.com/sirgallo/raftbid/pkg/connpool"
import "github.com/sirgallo/raftbid/pkg/raftrpc"
import "github.com/sirgallo/raftbid/pkg/utils"


//=========================================== gRPC Peer Transport


/*
	GRPCTransport realizes Transport over pooled gRPC connections. Each
	call retries through an exponential backoff before giving up -- a dropped RPC is
	expected and recovered by the next heartbeat regardless, so a small
	retry budget here just avoids treating one blip as a dead peer.
*/

type GRPCTransport struct {
	pool *connpool.ConnectionPool
}

func NewGRPCTransport(pool *connpool.ConnectionPool) *GRPCTransport {
	return &GRPCTransport{ pool: pool }
}

func (t *GRPCTransport) client(addr string) (raftrpc.RaftTransportClient, error) {
	conn, err := t.pool.GetConnection(addr, "")
	if err != nil { return nil, err }

	return raftrpc.NewRaftTransportClient(conn), nil
}

func backoffStrat[T any]() *utils.ExponentialBackoffStrat[T] {
	maxRetries := 2
	return utils.NewExponentialBackoffStrat[T](utils.ExpBackoffOpts{ MaxRetries: &maxRetries, TimeoutInMilliseconds: 15 })
}

func (t *GRPCTransport) SendAppendEntries(addr string, req *raftrpc.AppendEntriesRequest) (*raftrpc.AppendEntriesResponse, error) {
	return backoffStrat[*raftrpc.AppendEntriesResponse]().PerformBackoff(func() (*raftrpc.AppendEntriesResponse, error) {
		client, err := t.client(addr)
		if err != nil { return nil, err }

		ctx, cancel := context.WithTimeout(context.Background(), rpcCallTimeout)
		defer cancel()

		return client.AppendEntries(ctx, req)
	})
}

func (t *GRPCTransport) SendRequestVote(addr string, req *raftrpc.RequestVoteRequest) (*raftrpc.RequestVoteResponse, error) {
	return backoffStrat[*raftrpc.RequestVoteResponse]().PerformBackoff(func() (*raftrpc.RequestVoteResponse, error) {
		client, err := t.client(addr)
		if err != nil { return nil, err }

		ctx, cancel := context.WithTimeout(context.Background(), rpcCallTimeout)
		defer cancel()

		return client.RequestVote(ctx, req)
	})
}
