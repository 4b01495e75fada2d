package plex

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jrudio/go-plex-client"
	"plex-playlist-download/internal/logger"
)

// Error kinds callers can match with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnreachable  = errors.New("server unreachable")
	ErrNotFound     = errors.New("not found")
)

// Metadata is one playlist item as reported by the server.
type Metadata = plex.Metadata

type Server struct {
	plex.Plex
	// plexTv is the plex.tv API base the account switch talks to.
	plexTv string
}

// New opens a session to the Plex server at baseURL and verifies the
// token against it. The session is scoped to the token's own account
// until SwitchUser is called.
func New(baseURL string, token string) (*Server, error) {
	server, err := plex.New(baseURL, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}
	p := &Server{Plex: *server, plexTv: plexTvURL}
	if err := p.verify(); err != nil {
		return nil, err
	}
	return p, nil
}

// verify makes one authenticated request so bad credentials surface at
// connect time instead of on the first real call.
func (p *Server) verify() error {
	resp, err := p.http("GET", p.URL+"/")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.Status == plex.ErrorInvalidToken || resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnreachable, resp.Status)
	}
	return nil
}

// GetPlaylists returns every playlist visible to the session, in the
// order the server reports them.
func (p *Server) GetPlaylists() ([]Playlist, error) {
	query := fmt.Sprintf("%s/playlists", p.URL)

	resp, err := p.http("GET", query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}

	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.Status == plex.ErrorInvalidToken || resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, resp.Status)
	}

	var container PlaylistContainer
	if err := json.NewDecoder(resp.Body).Decode(&container); err != nil {
		return nil, err
	}
	return container.MediaContainer.Metadata, nil
}

// GetPlaylistByTitle resolves a playlist by exact title. The server's
// title filter matches substrings, so the result is checked again here.
func (p *Server) GetPlaylistByTitle(title string) (*Playlist, error) {
	args := make(map[string]string)
	args["title"] = title

	query := fmt.Sprintf("%s/playlists%s", p.URL, joinArgs(args))

	resp, err := p.http("GET", query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}

	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.Status == plex.ErrorInvalidToken || resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, resp.Status)
	}

	var container PlaylistContainer
	if err := json.NewDecoder(resp.Body).Decode(&container); err != nil {
		return nil, err
	}

	for i := range container.MediaContainer.Metadata {
		if container.MediaContainer.Metadata[i].Title == title {
			return &container.MediaContainer.Metadata[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no playlist named %q", ErrNotFound, title)
}

// GetPlaylistItems returns the playlist's items in stored order.
func (p *Server) GetPlaylistItems(playlist *Playlist) ([]Metadata, error) {
	key, err := strconv.Atoi(playlist.RatingKey)
	if err != nil {
		return nil, fmt.Errorf("bad playlist key %q: %w", playlist.RatingKey, err)
	}
	items, err := p.GetPlaylist(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}
	return items.MediaContainer.Metadata, nil
}

func (p *Server) http(verb string, query string) (*http.Response, error) {
	client := p.HTTPClient

	logger.LogVerbose(verb, " ", query)
	req, reqErr := http.NewRequest(verb, query, nil)

	if reqErr != nil {
		return &http.Response{}, reqErr
	}

	req.Header.Add("Accept", p.Headers.Accept)
	req.Header.Add("X-Plex-Platform", p.Headers.Platform)
	req.Header.Add("X-Plex-Platform-Version", p.Headers.PlatformVersion)
	req.Header.Add("X-Plex-Provides", p.Headers.Provides)
	req.Header.Add("X-Plex-Client-Identifier", p.ClientIdentifier)
	req.Header.Add("X-Plex-Product", p.Headers.Product)
	req.Header.Add("X-Plex-Version", p.Headers.Version)
	req.Header.Add("X-Plex-Device", p.Headers.Device)
	req.Header.Add("X-Plex-Token", p.Token)

	resp, err := client.Do(req)
	if err != nil {
		return &http.Response{}, err
	}

	return resp, nil
}

// joinArgs returns a query string where only the value is URL encoded.
// Example return value: '?genre=action&type=1337'.
func joinArgs(args map[string]string) string {
	var argList []string
	for key, value := range args {
		argList = append(argList, fmt.Sprintf("%s=%s", key, url.QueryEscape(value)))
	}
	return "?" + strings.Join(argList, "&")
}
