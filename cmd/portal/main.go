package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"

	"github.com/subassign/portal/client"
	"github.com/subassign/portal/session"
)

type portalConfig struct {
	Client client.Config `toml:"client"`
}

// loadConfig reads portal.toml next to the binary or under the user
// config dir. Missing config means mock mode, matching how the original
// client shipped with its mock API switched on.
func loadConfig() portalConfig {
	cfg := portalConfig{
		Client: client.Config{
			Mode:    client.ModeMock,
			BaseURL: "http://localhost:8080",
		},
	}

	paths := []string{"portal.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "subassign", "portal.toml"))
	}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "invalid config %s: %v\n", path, err)
			os.Exit(1)
		}
		break
	}

	return cfg
}

func main() {
	cfg := loadConfig()

	tokenPath, err := session.DefaultTokenPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot resolve config dir: %v\n", err)
		os.Exit(1)
	}

	sessions := session.NewStore(tokenPath)
	// protected views must not render before rehydration resolves
	sessions.Rehydrate()

	apiClient := client.New(cfg.Client, sessions)

	p := tea.NewProgram(newRootModel(apiClient, sessions))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "portal exited with error: %v\n", err)
		os.Exit(1)
	}
}
