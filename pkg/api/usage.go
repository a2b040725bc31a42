package api

// UsageSession is one game's shuttlecock usage.
type UsageSession struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	PlayerIDs   []string `json:"playerIds"`
	Quantity    int64    `json:"quantity"`
	MatchNumber int      `json:"matchNumber,omitempty"`
	CreatedAt   int64    `json:"createdAt,omitempty"`
}

type LogUsageRequest struct {
	Date        string   `json:"date"`
	PlayerIDs   []string `json:"playerIds"`
	Quantity    int64    `json:"quantity"`
	MatchNumber int      `json:"matchNumber,omitempty"`
}

type LogUsageResponse struct {
	Session *UsageSession `json:"session"`
}

type DeleteUsageRequest struct {
	ID string `json:"id"`
}

type DeleteUsageResponse struct{}

type ListUsageRequest struct {
	Date string `json:"date"`
}

type ListUsageResponse struct {
	Sessions []*UsageSession `json:"sessions"`
}
