package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"plex-playlist-download/internal/plex"
)

func TestGroupPlaylistsKeepsServerOrder(t *testing.T) {
	playlists := []plex.Playlist{
		{Title: "Road Trip", PlaylistType: "audio"},
		{Title: "Movie Night", PlaylistType: "video"},
		{Title: "Workout", PlaylistType: "audio"},
		{Title: "Holiday", PlaylistType: "photo"},
	}

	groups := groupPlaylists(playlists)
	assert.Equal(t, []string{"audio", "video", "photo"}, groups.Keys())
	assert.Equal(t, []string{"Road Trip", "Workout"}, groups.GetOrDefault("audio", nil))
	assert.Equal(t, []string{"Movie Night"}, groups.GetOrDefault("video", nil))
}

func TestGroupPlaylistsEmpty(t *testing.T) {
	groups := groupPlaylists(nil)
	assert.Equal(t, 0, groups.Len())
	assert.Empty(t, groups.Keys())
}
