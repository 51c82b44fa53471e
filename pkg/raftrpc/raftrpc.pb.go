// Wire types for raftrpc.proto, hand-written in the legacy
// protoc-gen-go message shape (Reset/String/ProtoMessage plus protobuf
// struct tags) and checked in; nothing regenerates this file at build time.
package raftrpc

import "fmt"


type LogEntry struct {
	Index   int64  `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Term    int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	Command string `protobuf:"bytes,3,opt,name=command,proto3" json:"command,omitempty"`
}

func (m *LogEntry) Reset()         { *m = LogEntry{} }
func (m *LogEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*LogEntry) ProtoMessage()    {}

func (m *LogEntry) GetIndex() int64 {
	if m != nil { return m.Index }
	return 0
}

func (m *LogEntry) GetTerm() int64 {
	if m != nil { return m.Term }
	return 0
}

func (m *LogEntry) GetCommand() string {
	if m != nil { return m.Command }
	return ""
}

type AppendEntriesRequest struct {
	SenderId          string      `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Term              int64       `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	PrevLogIndex      int64       `protobuf:"varint,3,opt,name=prev_log_index,json=prevLogIndex,proto3" json:"prev_log_index,omitempty"`
	PrevLogTerm       int64       `protobuf:"varint,4,opt,name=prev_log_term,json=prevLogTerm,proto3" json:"prev_log_term,omitempty"`
	Entries           []*LogEntry `protobuf:"bytes,5,rep,name=entries,proto3" json:"entries,omitempty"`
	LeaderCommitIndex int64       `protobuf:"varint,6,opt,name=leader_commit_index,json=leaderCommitIndex,proto3" json:"leader_commit_index,omitempty"`
}

func (m *AppendEntriesRequest) Reset()         { *m = AppendEntriesRequest{} }
func (m *AppendEntriesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AppendEntriesRequest) ProtoMessage()    {}

func (m *AppendEntriesRequest) GetSenderId() string {
	if m != nil { return m.SenderId }
	return ""
}

func (m *AppendEntriesRequest) GetTerm() int64 {
	if m != nil { return m.Term }
	return 0
}

func (m *AppendEntriesRequest) GetPrevLogIndex() int64 {
	if m != nil { return m.PrevLogIndex }
	return 0
}

func (m *AppendEntriesRequest) GetPrevLogTerm() int64 {
	if m != nil { return m.PrevLogTerm }
	return 0
}

func (m *AppendEntriesRequest) GetEntries() []*LogEntry {
	if m != nil { return m.Entries }
	return nil
}

func (m *AppendEntriesRequest) GetLeaderCommitIndex() int64 {
	if m != nil { return m.LeaderCommitIndex }
	return 0
}

type AppendEntriesResponse struct {
	SenderId   string `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Term       int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	Success    bool   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	MatchIndex int64  `protobuf:"varint,4,opt,name=match_index,json=matchIndex,proto3" json:"match_index,omitempty"`
}

func (m *AppendEntriesResponse) Reset()         { *m = AppendEntriesResponse{} }
func (m *AppendEntriesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AppendEntriesResponse) ProtoMessage()    {}

func (m *AppendEntriesResponse) GetSenderId() string {
	if m != nil { return m.SenderId }
	return ""
}

func (m *AppendEntriesResponse) GetTerm() int64 {
	if m != nil { return m.Term }
	return 0
}

func (m *AppendEntriesResponse) GetSuccess() bool {
	if m != nil { return m.Success }
	return false
}

func (m *AppendEntriesResponse) GetMatchIndex() int64 {
	if m != nil { return m.MatchIndex }
	return 0
}

type RequestVoteRequest struct {
	SenderId     string `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Term         int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	LastLogIndex int64  `protobuf:"varint,3,opt,name=last_log_index,json=lastLogIndex,proto3" json:"last_log_index,omitempty"`
	LastLogTerm  int64  `protobuf:"varint,4,opt,name=last_log_term,json=lastLogTerm,proto3" json:"last_log_term,omitempty"`
}

func (m *RequestVoteRequest) Reset()         { *m = RequestVoteRequest{} }
func (m *RequestVoteRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RequestVoteRequest) ProtoMessage()    {}

func (m *RequestVoteRequest) GetSenderId() string {
	if m != nil { return m.SenderId }
	return ""
}

func (m *RequestVoteRequest) GetTerm() int64 {
	if m != nil { return m.Term }
	return 0
}

func (m *RequestVoteRequest) GetLastLogIndex() int64 {
	if m != nil { return m.LastLogIndex }
	return 0
}

func (m *RequestVoteRequest) GetLastLogTerm() int64 {
	if m != nil { return m.LastLogTerm }
	return 0
}

type RequestVoteResponse struct {
	SenderId    string `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Term        int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
	VoteGranted bool   `protobuf:"varint,3,opt,name=vote_granted,json=voteGranted,proto3" json:"vote_granted,omitempty"`
}

func (m *RequestVoteResponse) Reset()         { *m = RequestVoteResponse{} }
func (m *RequestVoteResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RequestVoteResponse) ProtoMessage()    {}

func (m *RequestVoteResponse) GetSenderId() string {
	if m != nil { return m.SenderId }
	return ""
}

func (m *RequestVoteResponse) GetTerm() int64 {
	if m != nil { return m.Term }
	return 0
}

func (m *RequestVoteResponse) GetVoteGranted() bool {
	if m != nil { return m.VoteGranted }
	return false
}

// InstallSnapshotRequest/Response are reserved for the snapshot family,
// declared on the wire but unimplemented future work.
type InstallSnapshotRequest struct {
	SenderId string `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Term     int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
}

func (m *InstallSnapshotRequest) Reset()         { *m = InstallSnapshotRequest{} }
func (m *InstallSnapshotRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*InstallSnapshotRequest) ProtoMessage()    {}

type InstallSnapshotResponse struct {
	SenderId string `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	Term     int64  `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
}

func (m *InstallSnapshotResponse) Reset()         { *m = InstallSnapshotResponse{} }
func (m *InstallSnapshotResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*InstallSnapshotResponse) ProtoMessage()    {}
