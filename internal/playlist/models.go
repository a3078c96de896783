package playlist

import "time"

const (
	actionAdd    = "add"
	actionDelete = "delete"
)

// PlaylistSummary is a playlist annotated with its owner's username.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

type PlaylistDetail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Songs    []Song `json:"songs"`
}

// Activity is one append-only audit record of a song add/delete. Username and
// title come from left joins, so they are null once the user or song is gone
// rather than the activity being dropped.
type Activity struct {
	Username *string   `json:"username"`
	Title    *string   `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}
