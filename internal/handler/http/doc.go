// Package http exposes a remote record store over the REST and websocket
// API spoken by the sync client's adapter.
//
// Every route except the version endpoint requires a bearer JWT whose
// subject is the account ID. Request tracing, access logging, gzip and
// authentication are handled here before calls reach the store.
package http
