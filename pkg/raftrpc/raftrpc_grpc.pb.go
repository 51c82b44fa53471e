// gRPC service bindings for raftrpc.proto, hand-written in the
// protoc-gen-go-grpc shape and checked in (see raftrpc.pb.go).
package raftrpc

import "context"

import "google.golang.org/grpc"
import "google.golang.org/grpc/codes"
import "google.golang.org/grpc/status"


const (
	RaftTransport_AppendEntries_FullMethodName    = "/raftrpc.RaftTransport/AppendEntries"
	RaftTransport_RequestVote_FullMethodName      = "/raftrpc.RaftTransport/RequestVote"
	RaftTransport_InstallSnapshot_FullMethodName  = "/raftrpc.RaftTransport/InstallSnapshot"
)

type RaftTransportClient interface {
	AppendEntries(ctx context.Context, in *AppendEntriesRequest, opts ...grpc.CallOption) (*AppendEntriesResponse, error)
	RequestVote(ctx context.Context, in *RequestVoteRequest, opts ...grpc.CallOption) (*RequestVoteResponse, error)
	InstallSnapshot(ctx context.Context, in *InstallSnapshotRequest, opts ...grpc.CallOption) (*InstallSnapshotResponse, error)
}

type raftTransportClient struct {
	cc grpc.ClientConnInterface
}

func NewRaftTransportClient(cc grpc.ClientConnInterface) RaftTransportClient {
	return &raftTransportClient{ cc }
}

func (c *raftTransportClient) AppendEntries(ctx context.Context, in *AppendEntriesRequest, opts ...grpc.CallOption) (*AppendEntriesResponse, error) {
	out := new(AppendEntriesResponse)
	if err := c.cc.Invoke(ctx, RaftTransport_AppendEntries_FullMethodName, in, out, opts...); err != nil { return nil, err }

	return out, nil
}

func (c *raftTransportClient) RequestVote(ctx context.Context, in *RequestVoteRequest, opts ...grpc.CallOption) (*RequestVoteResponse, error) {
	out := new(RequestVoteResponse)
	if err := c.cc.Invoke(ctx, RaftTransport_RequestVote_FullMethodName, in, out, opts...); err != nil { return nil, err }

	return out, nil
}

func (c *raftTransportClient) InstallSnapshot(ctx context.Context, in *InstallSnapshotRequest, opts ...grpc.CallOption) (*InstallSnapshotResponse, error) {
	out := new(InstallSnapshotResponse)
	if err := c.cc.Invoke(ctx, RaftTransport_InstallSnapshot_FullMethodName, in, out, opts...); err != nil { return nil, err }

	return out, nil
}

type RaftTransportServer interface {
	AppendEntries(context.Context, *AppendEntriesRequest) (*AppendEntriesResponse, error)
	RequestVote(context.Context, *RequestVoteRequest) (*RequestVoteResponse, error)
	InstallSnapshot(context.Context, *InstallSnapshotRequest) (*InstallSnapshotResponse, error)
	mustEmbedUnimplementedRaftTransportServer()
}

// UnimplementedRaftTransportServer must be embedded by every concrete
// implementation for forward compatibility with new RPCs. Its
// InstallSnapshot implementation is the intended behavior, not just a
// placeholder: the snapshot family is reserved on the wire but
// unimplemented in the core.
type UnimplementedRaftTransportServer struct{}

func (UnimplementedRaftTransportServer) AppendEntries(context.Context, *AppendEntriesRequest) (*AppendEntriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AppendEntries not implemented")
}

func (UnimplementedRaftTransportServer) RequestVote(context.Context, *RequestVoteRequest) (*RequestVoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RequestVote not implemented")
}

func (UnimplementedRaftTransportServer) InstallSnapshot(context.Context, *InstallSnapshotRequest) (*InstallSnapshotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "snapshotting is not implemented in this core")
}

func (UnimplementedRaftTransportServer) mustEmbedUnimplementedRaftTransportServer() {}

func RegisterRaftTransportServer(s grpc.ServiceRegistrar, srv RaftTransportServer) {
	s.RegisterService(&RaftTransport_ServiceDesc, srv)
}

func _RaftTransport_AppendEntries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AppendEntriesRequest)
	if err := dec(in); err != nil { return nil, err }
	if interceptor == nil { return srv.(RaftTransportServer).AppendEntries(ctx, in) }

	info := &grpc.UnaryServerInfo{ Server: srv, FullMethod: RaftTransport_AppendEntries_FullMethodName }
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RaftTransportServer).AppendEntries(ctx, req.(*AppendEntriesRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _RaftTransport_RequestVote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestVoteRequest)
	if err := dec(in); err != nil { return nil, err }
	if interceptor == nil { return srv.(RaftTransportServer).RequestVote(ctx, in) }

	info := &grpc.UnaryServerInfo{ Server: srv, FullMethod: RaftTransport_RequestVote_FullMethodName }
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RaftTransportServer).RequestVote(ctx, req.(*RequestVoteRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _RaftTransport_InstallSnapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InstallSnapshotRequest)
	if err := dec(in); err != nil { return nil, err }
	if interceptor == nil { return srv.(RaftTransportServer).InstallSnapshot(ctx, in) }

	info := &grpc.UnaryServerInfo{ Server: srv, FullMethod: RaftTransport_InstallSnapshot_FullMethodName }
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RaftTransportServer).InstallSnapshot(ctx, req.(*InstallSnapshotRequest))
	}

	return interceptor(ctx, in, info, handler)
}

var RaftTransport_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "raftrpc.RaftTransport",
	HandlerType: (*RaftTransportServer)(nil),
	Methods: []grpc.MethodDesc{
		{ MethodName: "AppendEntries", Handler: _RaftTransport_AppendEntries_Handler },
		{ MethodName: "RequestVote", Handler: _RaftTransport_RequestVote_Handler },
		{ MethodName: "InstallSnapshot", Handler: _RaftTransport_InstallSnapshot_Handler },
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "raftrpc.proto",
}
