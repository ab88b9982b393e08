package fixture

// MatchRecord is one scheduled match. Date and Time are display strings and
// are never parsed.
type MatchRecord struct {
	ID             int    `db:"id" json:"id"`
	Teams          string `db:"teams" json:"teams"`
	Date           string `db:"match_date" json:"date"`
	Time           string `db:"match_time" json:"time"`
	Description    string `db:"description" json:"description"`
	LiveStreamLink string `db:"live_stream_link" json:"liveStreamLink"`
}
