// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the catalog server
// handlers and middleware.
//
// The Msg* constants are written into {"message": ...} response bodies.
// Clients such as the upload tool match on some of them, so the wording
// must stay stable.
package app

const (
	// MsgNotAuthenticated is returned when a protected route is called
	// without an Authorization header.
	MsgNotAuthenticated = "Not authenticated"

	// MsgCouldNotValidateCredentials is returned when a bearer token is
	// expired, forged or names a user that no longer exists.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgObjectDoesNotExist is the only body sent for missing objects,
	// invalid ids and unknown partitions. Ids and paths are never echoed.
	MsgObjectDoesNotExist = "Object does not exist"

	// MsgRequestTimedOut is sent when a request exceeds the server's
	// request timeout.
	MsgRequestTimedOut = "Request timed out"
)
