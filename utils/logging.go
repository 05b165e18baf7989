package utils

import (
	"strings"

	"github.com/juju/loggo"
	"github.com/pkg/errors"
)

// ConfigureLogging sets the root logging level, e.g. "DEBUG" or "WARNING".
// A full loggo spec such as "<root>=INFO;cave.model=TRACE" is passed through.
func ConfigureLogging(level string) error {
	spec := strings.TrimSpace(level)
	if spec == "" {
		return nil
	}
	if !strings.Contains(spec, "=") {
		spec = "<root>=" + strings.ToUpper(spec)
	}
	if err := loggo.ConfigureLoggers(spec); err != nil {
		return errors.Wrapf(err, "[ConfigureLogging] bad logging spec: %q", level)
	}
	return nil
}
