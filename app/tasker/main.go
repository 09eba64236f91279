// Tasker is a terminal client for the task list. It renders the tasks
// resource of the REST API and forwards every change back to the server.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OreBoia/my-rest-app/app/tasker/tui"
	"github.com/OreBoia/my-rest-app/client/restclient"
	"github.com/OreBoia/my-rest-app/sdk/environment"
)

var appName = "TASKER"

type config struct {
	APIURL  string        `env:"API_URL" default:"http://localhost:3000"`
	Timeout time.Duration `env:"TIMEOUT" default:"10s"`
}

func main() {
	environment.Load()

	var cfg config
	if err := environment.ParseEnvTags(appName, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing config: %v\n", err)
		os.Exit(1)
	}

	client := restclient.New(cfg.APIURL, restclient.WithTimeout(cfg.Timeout))

	p := tea.NewProgram(tui.New(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "running tasker: %v\n", err)
		os.Exit(1)
	}
}
