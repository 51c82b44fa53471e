package executor

import "time"

import bolt "go.etcd.io/bbolt"

import "github.com/sirgallo/raftbid/pkg/clog"
import "github.com/sirgallo/raftbid/pkg/command"


const UsersBucket = "users"
const UsersByUsernameIndex = "users_by_username"
const AuctionsBucket = "auctions"
const BidsBucket = "bids"
const BidsByAuctionIndex = "bids_by_auction"

/*
	Executor applies a committed log entry's command to the external
	application state machine. It is the only component
	permitted to touch that state, and must be deterministic across
	replicas given identical committed prefixes -- it never reads the
	wall clock or any other non-replicated input.
*/

type Executor interface {
	Apply(cmd command.Command) command.Result
}

type User struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Auction struct {
	Id          string    `json:"id"`
	User        string    `json:"user"`
	StartDate   time.Time `json:"startDate"`
	ObjName     string    `json:"objName"`
	ObjDesc     string    `json:"objDesc"`
	StartPrice  float64   `json:"startPrice"`
	Closed      bool      `json:"closed"`
	ClosingDate time.Time `json:"closingDate,omitempty"`
	HighBid     float64   `json:"highBid"`
	HighBidder  string    `json:"highBidder,omitempty"`
}

type Bid struct {
	Id        string  `json:"id"`
	User      string  `json:"user"`
	AuctionId string  `json:"auctionId"`
	Value     float64 `json:"value"`
}

/*
	AuctionStore is the bbolt-backed Command Executor implementation,
	using a bucket-per-collection plus index-bucket layout specialized
	from a generic KV store into the four auction/bidding command kinds.
*/

type AuctionStore struct {
	db  *bolt.DB
	Log *clog.Log
}
