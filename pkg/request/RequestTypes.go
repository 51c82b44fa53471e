package request

import "net/http"

import "github.com/sirgallo/raftbid/pkg/clog"
import "github.com/sirgallo/raftbid/pkg/raft"


//=========================================== Client Command Surface


/*
	Server exposes the client command interface: a request body of
	{commandType, args} returning {ok, result|errorKind}. It is a thin
	HTTP front for raft.Node.SubmitCommand, dispatching on a single
	commandType field that matches the command package's Kind tag
	directly instead of one bespoke route per command kind.
*/

type Server struct {
	node *raft.Node
	Log  *clog.Log
}

func NewServer(node *raft.Node) *Server {
	return &Server{ node: node, Log: clog.New("RequestServer") }
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/command", s.handleCommand)
	mux.HandleFunc("/status", s.handleStatus)

	return mux
}

type commandRequest struct {
	CommandType string `json:"commandType"`
	Args        struct {
		Username    string  `json:"username,omitempty"`
		Password    string  `json:"password,omitempty"`
		User        string  `json:"user,omitempty"`
		ObjName     string  `json:"objName,omitempty"`
		ObjDesc     string  `json:"objDesc,omitempty"`
		StartPrice  float64 `json:"startPrice,omitempty"`
		AuctionId   string  `json:"auctionId,omitempty"`
		Value       float64 `json:"value,omitempty"`
	} `json:"args"`
}

type commandResponse struct {
	Ok         bool   `json:"ok"`
	Id         string `json:"id,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorKind  string `json:"errorKind,omitempty"`
	LeaderHint string `json:"leaderHint,omitempty"`
}
