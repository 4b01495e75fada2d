package actions

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"plex-playlist-download/internal/filesystem"
	"plex-playlist-download/internal/logger"
	"plex-playlist-download/internal/models"
	"plex-playlist-download/internal/plex"
	"plex-playlist-download/internal/structures"
)

// ListPlaylists prints every playlist on the server, grouped by type.
func ListPlaylists(c *cli.Context) error {
	logger.SetLogLevel(c.String("loglevel"))
	config, err := models.ReadConfig(c)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}

	server, err := connect(config)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}

	logger.LogInfo("Getting playlists...")
	playlists, err := server.GetPlaylists()
	if err != nil {
		logger.LogError(err.Error())
		return err
	}

	if len(playlists) == 0 {
		logger.LogInfo("No playlists found")
		return nil
	}

	groups := groupPlaylists(playlists)
	logger.LogInfo("Supply any of the following playlists to --playlist <playlist>:")
	for _, section := range groups.Keys() {
		logger.LogInfof("\t%s:\n", section)
		for _, title := range groups.GetOrDefault(section, nil) {
			logger.LogInfof("\t\t%s\n", title)
		}
	}
	return nil
}

// DownloadPlaylist exports the named playlist's items to the destination
// directory, in stored or --order-by order, numbering the files unless
// --original-filenames is set.
func DownloadPlaylist(c *cli.Context) error {
	logger.SetLogLevel(c.String("loglevel"))
	config, err := models.ReadConfig(c)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}
	if config.Playlist == "" {
		err := errors.New("no playlist supplied: set --playlist, or run list to see what is available")
		logger.LogError(err.Error())
		return err
	}

	server, err := connect(config)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}

	logger.LogInfo("Getting playlist...")
	playlist, err := server.GetPlaylistByTitle(config.Playlist)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}

	items, err := server.GetPlaylistItems(playlist)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}
	logger.LogInfof("%d items found\n", playlist.LeafCount)

	ordered, err := OrderItems(items, config.OrderBy)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}

	saveTo := config.SaveTo
	if saveTo == "" {
		saveTo = "./" + playlist.Title
	}
	dest := filesystem.NewFileSystem(saveTo)

	logger.LogInfo("Downloading files...")
	count, err := ExportItems(server, ordered, dest, config.KeepOriginalNames)
	if err != nil {
		logger.LogErrorf("Export aborted after %d files: %s\n", count, err.Error())
		return err
	}
	logger.LogInfof(logger.Green+"Saved %d files to %s"+logger.Reset+"\n", count, dest.GetPath())
	return nil
}

// connect opens the session and, when requested, immediately re-scopes
// it to the managed account. The switch happens before any playlist
// access in both the list and download paths.
func connect(config *models.Config) (*plex.Server, error) {
	logger.LogInfo("Connecting to plex...")
	server, err := plex.New(config.Server, config.Token)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", config.Server, err)
	}

	if config.SwitchUser != "" {
		logger.LogInfof("Switching to account %s...\n", config.SwitchUser)
		server, err = server.SwitchUser(config.SwitchUser)
		if err != nil {
			return nil, fmt.Errorf("switching account: %w", err)
		}
	}
	return server, nil
}

// groupPlaylists groups playlist titles by playlist type, keeping the
// server's order on both levels.
func groupPlaylists(playlists []plex.Playlist) *structures.OrderedMap[[]string] {
	groups := structures.NewOrderedMap[[]string]()
	for _, playlist := range playlists {
		groups.Set(playlist.PlaylistType, append(groups.GetOrDefault(playlist.PlaylistType, nil), playlist.Title))
	}
	return &groups
}
