package executor

import "path/filepath"
import "testing"
import "time"

import "github.com/sirgallo/raftbid/pkg/command"


func newTestStore(t *testing.T) *AuctionStore {
	t.Helper()

	store, err := NewAuctionStore(filepath.Join(t.TempDir(), "auction.db"))
	if err != nil { t.Fatalf("opening test auction store: %v", err) }

	t.Cleanup(func() { store.Close() })

	return store
}

func TestNewUserThenDuplicateRejected(t *testing.T) {
	store := newTestStore(t)

	res := store.Apply(command.Command{ Kind: command.NewUser, NewUser: &command.NewUserPayload{ Username: "alice", Password: "pw" } })
	if !res.Ok || res.Id == "" { t.Fatalf("expected successful user creation, got %+v", res) }

	dup := store.Apply(command.Command{ Kind: command.NewUser, NewUser: &command.NewUserPayload{ Username: "alice", Password: "pw2" } })
	if dup.Ok { t.Fatal("expected duplicate username to be rejected") }
}

func TestAuctionLifecycle(t *testing.T) {
	store := newTestStore(t)

	userRes := store.Apply(command.Command{ Kind: command.NewUser, NewUser: &command.NewUserPayload{ Username: "alice", Password: "pw" } })
	if !userRes.Ok { t.Fatalf("user creation failed: %+v", userRes) }

	auctionRes := store.Apply(command.Command{
		Kind: command.NewAuction,
		NewAuction: &command.NewAuctionPayload{ User: "alice", StartDate: time.Now(), ObjName: "vase", ObjDesc: "clay", StartPrice: 10 },
	})
	if !auctionRes.Ok { t.Fatalf("auction creation failed: %+v", auctionRes) }

	lowBid := store.Apply(command.Command{
		Kind: command.NewBid,
		NewBid: &command.NewBidPayload{ User: "alice", AuctionId: auctionRes.Id, Value: 5 },
	})
	if lowBid.Ok { t.Fatal("expected bid below starting price to be rejected") }

	highBid := store.Apply(command.Command{
		Kind: command.NewBid,
		NewBid: &command.NewBidPayload{ User: "alice", AuctionId: auctionRes.Id, Value: 20 },
	})
	if !highBid.Ok { t.Fatalf("expected bid above starting price to succeed: %+v", highBid) }

	closeRes := store.Apply(command.Command{
		Kind: command.CloseAuction,
		CloseAuction: &command.CloseAuctionPayload{ AuctionId: auctionRes.Id, ClosingDate: time.Now() },
	})
	if !closeRes.Ok { t.Fatalf("expected auction close to succeed: %+v", closeRes) }

	bidAfterClose := store.Apply(command.Command{
		Kind: command.NewBid,
		NewBid: &command.NewBidPayload{ User: "alice", AuctionId: auctionRes.Id, Value: 50 },
	})
	if bidAfterClose.Ok { t.Fatal("expected bid on closed auction to be rejected") }
}

func TestBidOnUnknownAuctionRejected(t *testing.T) {
	store := newTestStore(t)

	res := store.Apply(command.Command{
		Kind: command.NewBid,
		NewBid: &command.NewBidPayload{ User: "alice", AuctionId: "does-not-exist", Value: 5 },
	})

	if res.Ok { t.Fatal("expected bid on nonexistent auction to be rejected") }
}

func TestUnrecognizedCommandKind(t *testing.T) {
	store := newTestStore(t)

	res := store.Apply(command.Command{ Kind: command.Kind("BOGUS") })
	if res.Ok { t.Fatal("expected unrecognized command kind to fail") }
}
