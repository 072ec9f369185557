package server

import "errors"

// errNoServersAreCreated is returned by NewServer without HTTP handlers or an
// HTTP address.
var errNoServersAreCreated = errors.New("no servers are created")
