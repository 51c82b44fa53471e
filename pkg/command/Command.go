package command

import "time"


//=========================================== Command


/*
	Kind tags the command families the Command Executor recognizes.
	New kinds can be added without changing the Raft core --
	the core only ever treats a Command as an opaque, JSON-encodable
	payload it replicates and hands to the executor once committed.
*/

type Kind string

const (
	NewUser      Kind = "NEW_USER"
	NewAuction   Kind = "NEW_AUCTION"
	NewBid       Kind = "NEW_BID"
	CloseAuction Kind = "CLOSE_AUCTION"
)

type Command struct {
	Kind Kind `json:"kind"`

	NewUser      *NewUserPayload      `json:"newUser,omitempty"`
	NewAuction   *NewAuctionPayload   `json:"newAuction,omitempty"`
	NewBid       *NewBidPayload       `json:"newBid,omitempty"`
	CloseAuction *CloseAuctionPayload `json:"closeAuction,omitempty"`
}

type NewUserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type NewAuctionPayload struct {
	User       string    `json:"user"`
	StartDate  time.Time `json:"startDate"`
	ObjName    string    `json:"objName"`
	ObjDesc    string    `json:"objDesc"`
	StartPrice float64   `json:"startPrice"`
}

type NewBidPayload struct {
	User      string  `json:"user"`
	AuctionId string  `json:"auctionId"`
	Value     float64 `json:"value"`
}

type CloseAuctionPayload struct {
	AuctionId   string    `json:"auctionId"`
	ClosingDate time.Time `json:"closingDate"`
}

/*
	Result is what the Command Executor returns for a committed command;
	it is routed back to the originating client's callback.
*/

type Result struct {
	Ok    bool   `json:"ok"`
	Id    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}
