package request

import "context"
import "encoding/json"
import "net/http"
import "time"

import "github.com/sirgallo/raftbid/pkg/command"


const submitTimeout = 2 * time.Second


func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body commandRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, commandResponse{ Ok: false, Error: err.Error() })
		return
	}

	cmd, buildErr := toCommand(body)
	if buildErr != nil {
		writeJSON(w, http.StatusBadRequest, commandResponse{ Ok: false, Error: buildErr.Error() })
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	result := s.node.SubmitCommand(ctx, cmd)

	if result.ErrorKind != "" {
		s.Log.Warn("command rejected", body.CommandType, result.ErrorKind)
		writeJSON(w, http.StatusOK, commandResponse{ Ok: false, ErrorKind: string(result.ErrorKind), LeaderHint: result.LeaderHint })
		return
	}

	writeJSON(w, http.StatusOK, commandResponse{ Ok: result.Result.Ok, Id: result.Result.Id, Error: result.Result.Error })
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := s.node.GetStatus()
	writeJSON(w, http.StatusOK, status)
}

func toCommand(body commandRequest) (command.Command, error) {
	switch command.Kind(body.CommandType) {
		case command.NewUser:
			return command.Command{
				Kind: command.NewUser,
				NewUser: &command.NewUserPayload{ Username: body.Args.Username, Password: body.Args.Password },
			}, nil

		case command.NewAuction:
			return command.Command{
				Kind: command.NewAuction,
				NewAuction: &command.NewAuctionPayload{
					User:       body.Args.User,
					StartDate:  time.Now(),
					ObjName:    body.Args.ObjName,
					ObjDesc:    body.Args.ObjDesc,
					StartPrice: body.Args.StartPrice,
				},
			}, nil

		case command.NewBid:
			return command.Command{
				Kind: command.NewBid,
				NewBid: &command.NewBidPayload{ User: body.Args.User, AuctionId: body.Args.AuctionId, Value: body.Args.Value },
			}, nil

		case command.CloseAuction:
			return command.Command{
				Kind: command.CloseAuction,
				CloseAuction: &command.CloseAuctionPayload{ AuctionId: body.Args.AuctionId, ClosingDate: time.Now() },
			}, nil
	}

	return command.Command{}, errUnknownCommandType(body.CommandType)
}

type errUnknownCommandType string

func (e errUnknownCommandType) Error() string { return "unknown commandType: " + string(e) }

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
