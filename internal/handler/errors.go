package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address. The server cannot start without it.
var errNoHandlersAreCreated = errors.New("no handlers are created")
