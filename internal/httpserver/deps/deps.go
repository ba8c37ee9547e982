package deps

import (
	"time"

	"github.com/mkvet/mkvet/internal/logger"
	"github.com/mkvet/mkvet/internal/state"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	Snapshot      *state.Snapshot // current validated config + report
	DocRoot       string          // docs source directory served by the preview
	ConfigFile    string          // path of the configuration document
	ReloadTrigger chan struct{}   // channel to trigger a manual config reload
}
