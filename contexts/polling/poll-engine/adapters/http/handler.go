package httpadapter

import (
	"context"
	"fmt"
	"log/slog"

	"rankify/contexts/polling/poll-engine/application/commands"
	"rankify/contexts/polling/poll-engine/application/queries"
	"rankify/contexts/polling/poll-engine/domain/entities"
	domainerrors "rankify/contexts/polling/poll-engine/domain/errors"
	httptransport "rankify/contexts/polling/poll-engine/transport/http"
)

// Handler maps transport DTOs onto use cases. It carries no HTTP concerns of
// its own; routing and status codes live in the platform server.
type Handler struct {
	Initiate    commands.InitiatePollUseCase
	Transitions commands.ChangePollStateUseCase
	Votes       commands.CastVoteUseCase
	Queries     queries.PollQueries
	Logger      *slog.Logger
}

func (h Handler) InitiatePollHandler(ctx context.Context, req httptransport.InitiatePollRequest) (httptransport.InitiatePollResponse, error) {
	pollID, err := h.Initiate.InitiatePoll(ctx, commands.InitiatePollCommand{
		Title:   req.Title,
		Options: req.Options,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		return httptransport.InitiatePollResponse{}, err
	}
	return httptransport.InitiatePollResponse{PollID: pollID.String()}, nil
}

func (h Handler) PatchPollHandler(ctx context.Context, pollID string, req httptransport.PatchPollRequest) error {
	switch req.Operation {
	case httptransport.PatchOperationStartVoting:
		return h.Transitions.StartVoting(ctx, entities.PollID(pollID))
	case httptransport.PatchOperationEndVoting:
		return h.Transitions.EndVoting(ctx, entities.PollID(pollID))
	case httptransport.PatchOperationUpdateTitle,
		httptransport.PatchOperationUpdateSchedule,
		httptransport.PatchOperationUpdateOptions:
		return fmt.Errorf("%w: %s", domainerrors.ErrUnsupportedOperation, req.Operation)
	default:
		return fmt.Errorf("%w: unknown operation %q", domainerrors.ErrInvalidArgument, req.Operation)
	}
}

func (h Handler) CastVoteHandler(ctx context.Context, pollID string, req httptransport.CastVoteRequest) error {
	return h.Votes.CastVote(ctx, commands.CastVoteCommand{
		PollID:   entities.PollID(pollID),
		Rankings: req.Rankings,
	})
}

func (h Handler) PollDetailsHandler(ctx context.Context, pollID string) (httptransport.PollDetailsResponse, error) {
	details, err := h.Queries.PollDetails(ctx, entities.PollID(pollID))
	if err != nil {
		return httptransport.PollDetailsResponse{}, err
	}
	return httptransport.PollDetailsResponse{
		PollID:  details.ID.String(),
		Title:   details.Title,
		Options: details.Options,
		State:   string(details.State),
		Start:   details.Start,
		End:     details.End,
		Created: details.Created,
	}, nil
}

func (h Handler) BallotHandler(ctx context.Context, pollID string) (httptransport.BallotResponse, error) {
	options, err := h.Queries.Ballot(ctx, entities.PollID(pollID))
	if err != nil {
		return httptransport.BallotResponse{}, err
	}
	return httptransport.BallotResponse{
		PollID:  pollID,
		Options: options,
	}, nil
}
