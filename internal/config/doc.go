// Package config locates a vkBasalt configuration file, parses its
// `key = value` lines into a flat option store, and converts stored values to
// int32, float32, bool, string, or ordered string lists on demand.
//
// Loading is best effort: an unreadable file, a malformed line, or a value
// that does not convert never surfaces as an error from the typed accessors.
// The caller-supplied default is returned instead and the detail goes to the
// configured logger.
package config
