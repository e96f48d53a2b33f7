package config

import "fmt"

// ModuleName is the name of the go module, injected at build time.
var ModuleName = "github/chapool/eth-payout"

// Commit is the git commit hash, injected at build time.
var Commit = "> 40 chars commit hash, injected at build time"

// BuildDate is the date of the build, injected at build time.
var BuildDate = "1970-01-01T00:00:00+00:00"

// GetFormattedBuildArgs returns string representation of buildsargs set
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
