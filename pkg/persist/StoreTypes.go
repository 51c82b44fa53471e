package persist

import bolt "go.etcd.io/bbolt"


const StateBucket = "raft-state"
const LogBucket = "raft-log"

const CurrentTermKey = "currentTerm"
const VotedForKey = "votedFor"

/*
	Store is the durable home for the three fields that must be
	persisted synchronously before a node can act on them: currentTerm,
	votedFor, and the log itself. One bucket holds the scalar state and
	one holds the append-only log, keyed by big-endian index following
	go.etcd.io/bbolt's own convention for ordered integer keys.
*/

type Store struct {
	db *bolt.DB
}
