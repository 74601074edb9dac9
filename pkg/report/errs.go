package report

import "errors"

// ErrUnknownFormat indicates an output format name that no Writer handles.
var ErrUnknownFormat = errors.New("report: unknown format")
