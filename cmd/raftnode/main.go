package main

import "flag"
import "fmt"
import "net"
import "net/http"
import "os"
import "os/signal"
import "path/filepath"
import "strings"
import "syscall"

import "google.golang.org/grpc"

import "github.com/sirgallo/raftbid/pkg/clog"
import "github.com/sirgallo/raftbid/pkg/connpool"
import "github.com/sirgallo/raftbid/pkg/executor"
import "github.com/sirgallo/raftbid/pkg/persist"
import "github.com/sirgallo/raftbid/pkg/raft"
import "github.com/sirgallo/raftbid/pkg/raftrpc"
import "github.com/sirgallo/raftbid/pkg/request"


/*
	raftnode wires the six core components into a runnable process:
	durable storage, the auction/bidding executor, a pooled gRPC peer
	transport, the Raft Node event loop, a gRPC server exposing it to
	peers, and an HTTP server exposing it to clients.
*/

func main() {
	id := flag.String("id", "", "this node's id")
	protocolPort := flag.String("protocolPort", "9001", "port for peer RPCs")
	clientPort := flag.String("clientPort", "8001", "port for client command submission")
	dataDir := flag.String("dataDir", "./data", "directory for durable storage")
	executorConfig := flag.String("executorConfig", "", "opaque path handed to the Command Executor for its own store; defaults to <dataDir>/auction.db")
	peersFlag := flag.String("peers", "", "comma-separated addr=id pairs for every other cluster member")

	minLeaderTimeout := flag.Int("minLeaderTimeout", 150, "ms")
	maxLeaderTimeout := flag.Int("maxLeaderTimeout", 300, "ms")
	minElectionTimeout := flag.Int("minElectionTimeout", 150, "ms")
	maxElectionTimeout := flag.Int("maxElectionTimeout", 300, "ms")
	minElectionDelay := flag.Int("minElectionDelay", 50, "ms")
	heartbeatTimeout := flag.Int("heartbeatTimeout", 50, "ms")

	flag.Parse()

	if *id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		os.Exit(1)
	}

	logger := clog.New("raftnode")

	peers, peerErr := parsePeers(*peersFlag)
	if peerErr != nil {
		logger.Error("invalid -peers", peerErr)
		os.Exit(1)
	}

	if mkErr := os.MkdirAll(*dataDir, 0755); mkErr != nil {
		logger.Error("creating data dir", mkErr)
		os.Exit(1)
	}

	store, storeErr := persist.Open(filepath.Join(*dataDir, "raft.db"))
	if storeErr != nil {
		logger.Error("opening raft store", storeErr)
		os.Exit(1)
	}
	defer store.Close()

	resolvedExecutorConfig := *executorConfig
	if resolvedExecutorConfig == "" { resolvedExecutorConfig = filepath.Join(*dataDir, "auction.db") }

	auctionStore, auctionErr := executor.NewAuctionStore(resolvedExecutorConfig)
	if auctionErr != nil {
		logger.Error("opening auction store", auctionErr)
		os.Exit(1)
	}
	defer auctionStore.Close()

	pool := connpool.NewConnectionPool(connpool.ConnectionPoolOpts{ MinConn: 1, MaxConn: 4 })
	transport := raft.NewGRPCTransport(pool)

	config := raft.Config{
		Id:                 *id,
		ProtocolPort:       *protocolPort,
		ClientPort:         *clientPort,
		MinLeaderTimeout:   *minLeaderTimeout,
		MaxLeaderTimeout:   *maxLeaderTimeout,
		MinElectionTimeout: *minElectionTimeout,
		MaxElectionTimeout: *maxElectionTimeout,
		MinElectionDelay:   *minElectionDelay,
		HeartbeatTimeout:   *heartbeatTimeout,
		Peers:              peers,
		DataDir:            *dataDir,
		ExecutorConfig:     resolvedExecutorConfig,
	}

	node := raft.New(config, store, auctionStore, transport)
	if startErr := node.Start(); startErr != nil {
		logger.Error("starting node", startErr)
		os.Exit(1)
	}
	defer node.Stop()

	grpcServer := grpc.NewServer()
	raftrpc.RegisterRaftTransportServer(grpcServer, node)

	listener, listenErr := net.Listen("tcp", ":"+*protocolPort)
	if listenErr != nil {
		logger.Error("listening on protocol port", listenErr)
		os.Exit(1)
	}

	go func() {
		if serveErr := grpcServer.Serve(listener); serveErr != nil {
			logger.Error("grpc server stopped", serveErr)
		}
	}()

	requestServer := request.NewServer(node)
	httpServer := &http.Server{ Addr: ":" + *clientPort, Handler: requestServer.Mux() }

	go func() {
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("http server stopped", serveErr)
		}
	}()

	logger.Info("raft node running", "id", *id, "protocolPort", *protocolPort, "clientPort", *clientPort)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")

	grpcServer.GracefulStop()
	httpServer.Close()
}

func parsePeers(raw string) (map[string]string, error) {
	peers := make(map[string]string)
	if raw == "" { return peers, nil }

	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed peer entry %q, expected addr=id", pair)
		}

		peers[parts[0]] = parts[1]
	}

	return peers, nil
}
