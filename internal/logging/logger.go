// Package logging builds the zap loggers used by the linechart commands.
package logging

import (
	"go.uber.org/zap"
)

// New returns a development logger when verbose, a production JSON logger otherwise.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
