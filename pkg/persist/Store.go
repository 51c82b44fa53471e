package persist

import "encoding/binary"
import "fmt"

import bolt "go.etcd.io/bbolt"

import "github.com/sirgallo/raftbid/pkg/raftlog"
import "github.com/sirgallo/raftbid/pkg/utils"


//=========================================== Durable Raft State


func Open(path string) (*Store, error) {
	db, openErr := bolt.Open(path, 0600, nil)
	if openErr != nil { return nil, fmt.Errorf("opening raft state db: %w", openErr) }

	initTxn := func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(StateBucket)); err != nil { return err }
		if _, err := tx.CreateBucketIfNotExists([]byte(LogBucket)); err != nil { return err }

		return nil
	}

	if initErr := db.Update(initTxn); initErr != nil {
		return nil, fmt.Errorf("initializing raft state buckets: %w", initErr)
	}

	return &Store{ db: db }, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

/*
	LoadState reads currentTerm and votedFor back on restart. Absent
	keys mean a fresh node: term 0, no vote.
*/

func (s *Store) LoadState() (currentTerm int64, votedFor string, err error) {
	readTxn := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(StateBucket))

		if termBytes := bucket.Get([]byte(CurrentTermKey)); termBytes != nil {
			currentTerm = int64(binary.BigEndian.Uint64(termBytes))
		}

		if votedForBytes := bucket.Get([]byte(VotedForKey)); votedForBytes != nil {
			votedFor = string(votedForBytes)
		}

		return nil
	}

	if readErr := s.db.View(readTxn); readErr != nil { return 0, "", readErr }

	return currentTerm, votedFor, nil
}

/*
	SaveState persists currentTerm and votedFor synchronously -- every
	vote grant and every term change must reach disk before any
	dependent outgoing RPC.
*/

func (s *Store) SaveState(currentTerm int64, votedFor string) error {
	writeTxn := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(StateBucket))

		termBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(termBytes, uint64(currentTerm))

		if err := bucket.Put([]byte(CurrentTermKey), termBytes); err != nil { return err }
		if err := bucket.Put([]byte(VotedForKey), []byte(votedFor)); err != nil { return err }

		return nil
	}

	return s.db.Update(writeTxn)
}

/*
	AppendLogEntries writes entries (by index) durably before the
	leader or follower acts on them. The client callback is never
	persisted -- LogEntry has no field for it; it is leader-local,
	in-memory only.
*/

func (s *Store) AppendLogEntries(entries []*raftlog.LogEntry) error {
	writeTxn := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))

		for _, entry := range entries {
			key := indexKey(entry.Index)

			encoded, encErr := utils.EncodeStructToBytes(*entry)
			if encErr != nil { return encErr }

			if err := bucket.Put(key, encoded); err != nil { return err }
		}

		return nil
	}

	return s.db.Update(writeTxn)
}

/*
	TruncateLogFrom deletes every durable entry at or after index,
	mirroring raftlog.Log.TruncateFrom.
*/

func (s *Store) TruncateLogFrom(index int64) error {
	writeTxn := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))
		cursor := bucket.Cursor()

		for key, _ := cursor.Seek(indexKey(index)); key != nil; key, _ = cursor.Next() {
			if delErr := bucket.Delete(key); delErr != nil { return delErr }
		}

		return nil
	}

	return s.db.Update(writeTxn)
}

/*
	LoadLog rebuilds the in-memory log from durable storage on restart;
	volatile state always rebuilds from the log, never the reverse.
*/

func (s *Store) LoadLog() ([]*raftlog.LogEntry, error) {
	var entries []*raftlog.LogEntry

	readTxn := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))
		cursor := bucket.Cursor()

		for key, val := cursor.First(); key != nil; key, val = cursor.Next() {
			entry, decErr := utils.DecodeBytesToStruct[raftlog.LogEntry](val)
			if decErr != nil { return decErr }

			entries = append(entries, entry)
		}

		return nil
	}

	if readErr := s.db.View(readTxn); readErr != nil { return nil, readErr }

	return entries, nil
}

func indexKey(index int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(index))

	return key
}
