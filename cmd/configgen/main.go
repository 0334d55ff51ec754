// Command configgen materializes selected environment variables into a
// static JavaScript file (config.js) that assigns them to window.env, for
// client runtimes that cannot read the process environment.
//
// Usage:
//
//	configgen [-env-file .env.local] [-o config.js] [-global window.env] [-names A,B]
//
// On success a single confirmation line is printed to stdout and the exit
// status is 0. Any failure is reported on stderr with a non-zero status.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-config-gen/internal/app"
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/environment"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/internal/materializer"
	"github.com/MKhiriev/go-config-gen/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	os.Exit(run(os.Args[1:], environment.NewOSProvider(), os.Stdout, os.Stderr))
}

// run executes the generator and returns the process exit status.
func run(args []string, env environment.Provider, stdout, stderr io.Writer) int {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("%s: %v", app.MsgInvalidConfiguration, err)))
		return 2
	}

	if cfg.PrintVersion {
		fmt.Fprintln(stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	log := logger.NewLogger("configgen", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	m, err := materializer.New(cfg.Generator, env, log)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("%s: %v", app.MsgArtifactNotGenerated, err)))
		return 1
	}

	result, err := m.Run()
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("%s: %v", app.MsgArtifactNotGenerated, err)))
		return 1
	}

	fmt.Fprintln(stdout, successStyle.Render(result.Message()))
	return 0
}
