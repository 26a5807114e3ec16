package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/formcheck/internal/registration"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.registration.enabled") {
		if err := registration.New(registration.Dependency{
			Router:     a.router,
			Instrument: a.ins,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module registration", "error", err)
			os.Exit(1)
		}
	}
}
