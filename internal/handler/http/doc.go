// Package http implements the vault daemon's HTTP boundary.
//
// Every front-end surface (vaultctl, a fill agent, a browser bridge) reaches
// the vault through the routes registered here. Gateway messages are posted
// to /api/vault/message and always answered with a tagged response; the
// credential editor routes map service errors to HTTP status codes. Request
// tracing, access logging and optional caller authentication are handled in
// middleware before requests reach the service layer.
package http
