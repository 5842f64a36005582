// Package cli implements the command line tools shipped next to the
// catalog server: userdb manages the JSON user database and upload pushes
// objects from a JSON file to a running server.
package cli
