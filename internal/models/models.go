package models

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/urfave/cli/v2"
	"plex-playlist-download/internal/logger"
)

// DefaultServer is used when no server address is supplied. There is no
// default token: production use requires an explicit credential.
const DefaultServer = "http://192.168.0.100:32400"

// Config is resolved once from the optional JSON config file plus CLI
// flags (flags win) and is read-only afterwards.
type Config struct {
	Server            string `json:"server"`
	Token             string `json:"token"`
	SwitchUser        string `json:"switchUser"`
	SaveTo            string `json:"savePath"`
	KeepOriginalNames bool   `json:"originalFilenames"`
	Playlist          string `json:"-"`
	OrderBy           string `json:"-"`
}

func ReadConfig(ctx *cli.Context) (*Config, error) {
	var config Config

	if path := ctx.Path("config"); path != "" {
		logger.LogInfo("Loading config...")
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		//goland:noinspection GoUnhandledErrorResult
		defer file.Close()
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil {
			return nil, err
		}
	}

	if ctx.String("host") != "" {
		config.Server = ctx.String("host")
	}
	if ctx.String("token") != "" {
		config.Token = ctx.String("token")
	}
	if ctx.String("switch-user") != "" {
		config.SwitchUser = ctx.String("switch-user")
	}
	if ctx.String("save-to") != "" {
		config.SaveTo = ctx.String("save-to")
	}
	if ctx.IsSet("original-filenames") {
		config.KeepOriginalNames = ctx.Bool("original-filenames")
	}
	config.Playlist = ctx.String("playlist")
	config.OrderBy = ctx.String("order-by")

	if config.Server == "" {
		config.Server = DefaultServer
	}
	if config.Token == "" {
		return nil, errors.New("no token supplied: set --token or the token field of the config file")
	}

	return &config, nil
}
