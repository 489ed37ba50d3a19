// Package application wires the logger and the configuration resolver
// together for the basaltconf command and renders resolved options for
// display. It keeps the main package focused on CLI parsing.
package application
