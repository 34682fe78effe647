// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires this app into the WAFFLE lifecycle.
// Each function is called in order by app.Run, from configuration
// loading through backend setup, one-time startup work, HTTP handler
// construction, and finally graceful shutdown.
//
// Only LoadConfig, ConnectDB, and BuildHandler are strictly required;
// the others are optional and may be nil if the app does not need them.
// There is no EnsureSchema hook here: the working set is in memory.
var Hooks = app.Hooks[AppConfig, Deps]{
	Name:           "stratapulse",  // used only for logging/diagnostics
	LoadConfig:     LoadConfig,     // load core + app config
	ValidateConfig: ValidateConfig, // validate directory URL and operator credential
	ConnectDB:      ConnectDB,      // build the in-memory store and directory fetcher
	Startup:        Startup,        // initial sync, start the background sync job
	BuildHandler:   BuildHandler,   // build the HTTP router + middleware stack
	Shutdown:       Shutdown,       // stop the background task runner
}
