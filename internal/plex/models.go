package plex

// PlaylistContainer is the response envelope of the /playlists endpoint.
// The client library's SearchResults drops the playlistType field, so the
// playlists are decoded into a local type instead.
type PlaylistContainer struct {
	MediaContainer PlaylistMediaContainer `json:"MediaContainer"`
}

type PlaylistMediaContainer struct {
	Size     int        `json:"size"`
	Metadata []Playlist `json:"Metadata"`
}

type Playlist struct {
	RatingKey    string `json:"ratingKey"`
	Key          string `json:"key"`
	GUID         string `json:"guid"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Summary      string `json:"summary"`
	PlaylistType string `json:"playlistType"`
	Composite    string `json:"composite"`
	Duration     int    `json:"duration"`
	LeafCount    int    `json:"leafCount"`
	AddedAt      int    `json:"addedAt"`
	UpdatedAt    int    `json:"updatedAt"`
}
