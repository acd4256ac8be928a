package server

import "errors"

// errNoReportServer is returned when there is no HTTP handler or no listen
// address to serve the reports on.
var errNoReportServer = errors.New("report server needs an http handler and a listen address")
