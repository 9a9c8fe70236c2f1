// Package wren is the root of the Wren module: validated line prompts for
// the Firebird Suite.
package wren

// Version is the current Wren release.
const Version = "0.1.0"
