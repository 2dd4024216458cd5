// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// DefaultConfigFile is looked up in the user's home directory when no
// --config flag is given.
const DefaultConfigFile = ".moon-phase.yaml"
