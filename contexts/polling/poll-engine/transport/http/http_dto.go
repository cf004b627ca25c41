package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type InitiatePollRequest struct {
	Title   string     `json:"title"`
	Options []string   `json:"options"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
}

type InitiatePollResponse struct {
	PollID string `json:"poll_id"`
}

// PatchPollRequest selects a lifecycle operation. The update_* operations are
// reserved and currently rejected.
type PatchPollRequest struct {
	Operation string `json:"operation"`
}

const (
	PatchOperationStartVoting    = "start_voting"
	PatchOperationEndVoting      = "end_voting"
	PatchOperationUpdateTitle    = "update_title"
	PatchOperationUpdateSchedule = "update_schedule"
	PatchOperationUpdateOptions  = "update_options"
)

type CastVoteRequest struct {
	Rankings map[string]int `json:"rankings"`
}

type PollDetailsResponse struct {
	PollID  string     `json:"poll_id"`
	Title   string     `json:"title"`
	Options []string   `json:"options"`
	State   string     `json:"state"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
	Created time.Time  `json:"created"`
}

type BallotResponse struct {
	PollID  string   `json:"poll_id"`
	Options []string `json:"options"`
}
