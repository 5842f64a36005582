// Package http implements the REST API of the data catalog.
//
// Reads of catalog objects are public. Mutations need a bearer token issued
// by POST /token, and the secrets routes additionally need a user with
// secrets access. Request tracing, access logging, CORS and response
// compression are handled here before requests reach the service layer.
package http
