package dto

// CastVoteRequest records a vote. A null choice is an abstention.
type CastVoteRequest struct {
	Choice *string `json:"liste"`
}

// VoteResponse reports the caller's current vote
type VoteResponse struct {
	Choice   *string `json:"liste"`
	HasVoted bool    `json:"hasVoted"`
}

// VoteResultsResponse tallies the current vote of every voter
type VoteResultsResponse struct {
	Counts      map[string]int `json:"counts"`
	Abstentions int            `json:"abstentions"`
}
