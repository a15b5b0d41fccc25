package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile gathers g and writes it to path in the text exposition format.
// The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if path == "" {
		return ErrEmptyPath
	}
	if g == nil {
		return ErrNilRegistry
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
