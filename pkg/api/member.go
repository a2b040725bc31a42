package api

// Member is a player in the club roster.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsMember  bool   `json:"isMember"`
	Grade     string `json:"grade,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

type CreateMemberRequest struct {
	Name     string `json:"name"`
	IsMember bool   `json:"isMember"`
	Grade    string `json:"grade,omitempty"`
}

type CreateMemberResponse struct {
	Member *Member `json:"member"`
}

type UpdateMemberRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsMember bool   `json:"isMember"`
	Grade    string `json:"grade,omitempty"`
}

type UpdateMemberResponse struct {
	Member *Member `json:"member"`
}

type DeleteMemberRequest struct {
	ID string `json:"id"`
}

type DeleteMemberResponse struct{}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}
