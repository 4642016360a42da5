package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateRoomRequest struct {
	Options    []string `json:"options" validate:"required,min=1,dive,required"`
	TTLSeconds int64    `json:"ttl_seconds" validate:"gte=0"`
}

type RoomResponse struct {
	RoomID    string   `json:"room_id"`
	Options   []string `json:"options"`
	CreatedAt string   `json:"created_at"`
	ExpiresAt string   `json:"expires_at,omitempty"`
	VoteCount int      `json:"vote_count"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

type IntervalPayload struct {
	Option string  `json:"option" validate:"required"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// SubmitBallotRequest carries exactly one of the three vote forms: interval
// placements on the bar, direct percentages per option, or one point marker
// per option whose shares come from the midpoint split of the bar.
type SubmitBallotRequest struct {
	VoterID     string             `json:"voter_id,omitempty"`
	Intervals   []IntervalPayload  `json:"intervals,omitempty" validate:"omitempty,dive"`
	Percentages map[string]float64 `json:"percentages,omitempty"`
	Points      map[string]float64 `json:"points,omitempty"`
}

type VoteResponse struct {
	VoteID      string             `json:"vote_id"`
	RoomID      string             `json:"room_id"`
	VoterID     string             `json:"voter_id"`
	Allocations map[string]float64 `json:"allocations"`
	SubmittedAt string             `json:"submitted_at"`
}

type OptionResultItem struct {
	Option    string  `json:"option"`
	Mean      float64 `json:"mean"`
	VoteCount int     `json:"vote_count"`
	ZeroVotes int     `json:"zero_votes"`
}

type ResultsResponse struct {
	RoomID    string             `json:"room_id"`
	VoteCount int                `json:"vote_count"`
	Options   []OptionResultItem `json:"options"`
}

type CleanupResponse struct {
	Evicted int `json:"evicted"`
}
