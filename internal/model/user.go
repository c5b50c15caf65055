package model

type User struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
}

type Call struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	CreatedBy string `json:"createdBy"`
}

const (
	MessageBucketType = "message"
)
