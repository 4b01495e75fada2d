package plex

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrudio/go-plex-client"
)

const plexTvURL = "https://plex.tv"

type homeUser struct {
	ID         int    `json:"id"`
	UUID       string `json:"uuid"`
	Title      string `json:"title"`
	Restricted bool   `json:"restricted"`
}

type homeUserContainer struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Users []homeUser `json:"users"`
}

// SwitchUser re-scopes the session to the managed home account with the
// given name and returns a new session bound to that account's token.
// The receiver is superseded and must not be used afterwards.
func (p *Server) SwitchUser(name string) (*Server, error) {
	users, err := p.homeUsers()
	if err != nil {
		return nil, err
	}

	var user *homeUser
	for i := range users {
		if users[i].Title == name {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no managed account named %q", ErrUnauthorized, name)
	}

	token, err := p.switchToken(user)
	if err != nil {
		return nil, err
	}
	server, err := New(p.URL, token)
	if err != nil {
		return nil, err
	}
	server.plexTv = p.plexTv
	return server, nil
}

func (p *Server) homeUsers() ([]homeUser, error) {
	resp, err := p.http("GET", p.plexTv+"/api/v2/home/users")
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

	var container homeUserContainer
	if err := json.NewDecoder(resp.Body).Decode(&container); err != nil {
		return nil, err
	}
	return container.Users, nil
}

// switchToken trades the session's token for the managed account's token.
// Accounts protected by a PIN are rejected by plex.tv here; the switch
// only works for unrestricted managed users.
func (p *Server) switchToken(user *homeUser) (string, error) {
	query := fmt.Sprintf("%s/api/v2/home/users/%s/switch", p.plexTv, user.UUID)

	resp, err := p.http("POST", query)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnreachable, err.Error())
	}

	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: %s", ErrUnreachable, resp.Status)
	}

	var result struct {
		AuthToken string `json:"authToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.AuthToken == "" {
		return "", fmt.Errorf("%w: switch returned no token", ErrUnauthorized)
	}
	return result.AuthToken, nil
}
