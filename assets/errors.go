package assets

import "errors"

// ErrClosed is returned by a Manager after Close.
var ErrClosed = errors.New("assets: manager closed")

// ErrWatching is returned when Watch is called while another Watch is
// running.
var ErrWatching = errors.New("assets: already watching")
