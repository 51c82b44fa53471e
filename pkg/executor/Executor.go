package executor

import "fmt"

import bolt "go.etcd.io/bbolt"
import "github.com/google/uuid"

import "github.com/sirgallo/raftbid/pkg/clog"
import "github.com/sirgallo/raftbid/pkg/command"
import "github.com/sirgallo/raftbid/pkg/utils"


//=========================================== Command Executor


func NewAuctionStore(path string) (*AuctionStore, error) {
	db, openErr := bolt.Open(path, 0600, nil)
	if openErr != nil { return nil, fmt.Errorf("opening auction store: %w", openErr) }

	initTxn := func(tx *bolt.Tx) error {
		for _, name := range []string{ UsersBucket, UsersByUsernameIndex, AuctionsBucket, BidsBucket, BidsByAuctionIndex } {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil { return err }
		}

		return nil
	}

	if initErr := db.Update(initTxn); initErr != nil { return nil, fmt.Errorf("initializing auction store buckets: %w", initErr) }

	return &AuctionStore{ db: db, Log: clog.New("Executor") }, nil
}

func (store *AuctionStore) Close() error {
	return store.db.Close()
}

/*
	Apply dispatches a committed command to its handler, inside a
	single bbolt transaction so the command's effect is all-or-nothing
	and identical in every replica applying the same committed prefix.
	Handler errors are returned as a failed Result rather than rolling
	back the log entry's "applied" status -- the command is considered
	applied with an error result, consistently across replicas, because
	the executor is deterministic: given the same committed prefix,
	every replica reaches the same state.
*/

func (store *AuctionStore) Apply(cmd command.Command) command.Result {
	switch cmd.Kind {
		case command.NewUser:
			return store.applyNewUser(cmd.NewUser)
		case command.NewAuction:
			return store.applyNewAuction(cmd.NewAuction)
		case command.NewBid:
			return store.applyNewBid(cmd.NewBid)
		case command.CloseAuction:
			return store.applyCloseAuction(cmd.CloseAuction)
		default:
			return command.Result{ Ok: false, Error: "unrecognized command kind: " + string(cmd.Kind) }
	}
}

func (store *AuctionStore) applyNewUser(payload *command.NewUserPayload) command.Result {
	if payload == nil { return command.Result{ Ok: false, Error: "missing NEW_USER payload" } }

	var id string

	txn := func(tx *bolt.Tx) error {
		index := tx.Bucket([]byte(UsersByUsernameIndex))
		if existing := index.Get([]byte(payload.Username)); existing != nil {
			return fmt.Errorf("username %q already exists", payload.Username)
		}

		id = uuid.New().String()

		user := User{ Id: id, Username: payload.Username, Password: payload.Password }
		encoded, encErr := utils.EncodeStructToBytes(user)
		if encErr != nil { return encErr }

		users := tx.Bucket([]byte(UsersBucket))
		if putErr := users.Put([]byte(id), encoded); putErr != nil { return putErr }

		return index.Put([]byte(payload.Username), []byte(id))
	}

	if err := store.db.Update(txn); err != nil { return command.Result{ Ok: false, Error: err.Error() } }

	return command.Result{ Ok: true, Id: id }
}

func (store *AuctionStore) applyNewAuction(payload *command.NewAuctionPayload) command.Result {
	if payload == nil { return command.Result{ Ok: false, Error: "missing NEW_AUCTION payload" } }

	var id string

	txn := func(tx *bolt.Tx) error {
		userIndex := tx.Bucket([]byte(UsersByUsernameIndex))
		if userIndex.Get([]byte(payload.User)) == nil {
			return fmt.Errorf("user %q does not exist", payload.User)
		}

		id = uuid.New().String()

		auction := Auction{
			Id: id,
			User: payload.User,
			StartDate: payload.StartDate,
			ObjName: payload.ObjName,
			ObjDesc: payload.ObjDesc,
			StartPrice: payload.StartPrice,
			HighBid: payload.StartPrice,
		}

		encoded, encErr := utils.EncodeStructToBytes(auction)
		if encErr != nil { return encErr }

		auctions := tx.Bucket([]byte(AuctionsBucket))
		return auctions.Put([]byte(id), encoded)
	}

	if err := store.db.Update(txn); err != nil { return command.Result{ Ok: false, Error: err.Error() } }

	return command.Result{ Ok: true, Id: id }
}

func (store *AuctionStore) applyNewBid(payload *command.NewBidPayload) command.Result {
	if payload == nil { return command.Result{ Ok: false, Error: "missing NEW_BID payload" } }

	var id string

	txn := func(tx *bolt.Tx) error {
		auctions := tx.Bucket([]byte(AuctionsBucket))

		auctionBytes := auctions.Get([]byte(payload.AuctionId))
		if auctionBytes == nil { return fmt.Errorf("auction %q does not exist", payload.AuctionId) }

		auction, decErr := utils.DecodeBytesToStruct[Auction](auctionBytes)
		if decErr != nil { return decErr }

		if auction.Closed { return fmt.Errorf("auction %q is closed", payload.AuctionId) }
		if payload.Value <= auction.HighBid { return fmt.Errorf("bid %.2f does not exceed current high bid %.2f", payload.Value, auction.HighBid) }

		id = uuid.New().String()

		bid := Bid{ Id: id, User: payload.User, AuctionId: payload.AuctionId, Value: payload.Value }
		encodedBid, encBidErr := utils.EncodeStructToBytes(bid)
		if encBidErr != nil { return encBidErr }

		bids := tx.Bucket([]byte(BidsBucket))
		if putErr := bids.Put([]byte(id), encodedBid); putErr != nil { return putErr }

		byAuction := tx.Bucket([]byte(BidsByAuctionIndex))
		if putErr := byAuction.Put(bidIndexKey(payload.AuctionId, id), []byte(id)); putErr != nil { return putErr }

		auction.HighBid = payload.Value
		auction.HighBidder = payload.User

		encodedAuction, encAuctionErr := utils.EncodeStructToBytes(*auction)
		if encAuctionErr != nil { return encAuctionErr }

		return auctions.Put([]byte(payload.AuctionId), encodedAuction)
	}

	if err := store.db.Update(txn); err != nil { return command.Result{ Ok: false, Error: err.Error() } }

	return command.Result{ Ok: true, Id: id }
}

func (store *AuctionStore) applyCloseAuction(payload *command.CloseAuctionPayload) command.Result {
	if payload == nil { return command.Result{ Ok: false, Error: "missing CLOSE_AUCTION payload" } }

	txn := func(tx *bolt.Tx) error {
		auctions := tx.Bucket([]byte(AuctionsBucket))

		auctionBytes := auctions.Get([]byte(payload.AuctionId))
		if auctionBytes == nil { return fmt.Errorf("auction %q does not exist", payload.AuctionId) }

		auction, decErr := utils.DecodeBytesToStruct[Auction](auctionBytes)
		if decErr != nil { return decErr }

		if auction.Closed { return fmt.Errorf("auction %q is already closed", payload.AuctionId) }

		auction.Closed = true
		auction.ClosingDate = payload.ClosingDate

		encoded, encErr := utils.EncodeStructToBytes(*auction)
		if encErr != nil { return encErr }

		return auctions.Put([]byte(payload.AuctionId), encoded)
	}

	if err := store.db.Update(txn); err != nil { return command.Result{ Ok: false, Error: err.Error() } }

	return command.Result{ Ok: true, Id: payload.AuctionId }
}

func bidIndexKey(auctionId string, bidId string) []byte {
	return []byte(auctionId + "/" + bidId)
}
