// Package version contains information on the current version of the
// module. It is split out from the rest of the code so other packages can
// report it without importing anything that pulls in the full pipeline.
package version

// Current is the string representing the current version of rexfa.
const Current = "0.1.0"
