// FILE: bouquet/config/discovery.go
package config

import (
	"os"
	"strings"
)

// AppName is the directory component used by the built-in search locations.
// Override at build time with -ldflags "-X github.com/lixenwraith/bouquet/config.AppName=myapp".
var AppName = "jbouquet"

// ProcessConfigKey names the process-level option listing extra search
// locations as a comma-separated list of templates.
const ProcessConfigKey = "eds.config"

// DefaultPaths returns the built-in search locations, appended to every search list.
func DefaultPaths() []string {
	return []string{
		"/configs/%s",
		"/etc/" + AppName + "/configs/%s",
		"/etc/" + AppName + "/configuration/%s",
		"../etc/%s",
		"./%s",
	}
}

// ProcessConfig resolves the eds.config option for the running process
// from its command-line arguments and environment.
func ProcessConfig() string {
	return ProcessConfigFrom(os.Args[1:], os.LookupEnv)
}

// ProcessConfigFrom resolves the eds.config option.
// Command-line arguments win over the environment. Recognized argument forms are
// "--eds.config=v", "--eds.config v" and the JVM style "-Deds.config=v".
// The environment is checked for EDS_CONFIG, then for a variable literally named eds.config.
func ProcessConfigFrom(args []string, lookup func(string) (string, bool)) string {
	flag := "--" + ProcessConfigKey
	sysProp := "-D" + ProcessConfigKey + "="

	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, flag+"=") {
			return strings.TrimPrefix(arg, flag+"=")
		}
		if strings.HasPrefix(arg, sysProp) {
			return strings.TrimPrefix(arg, sysProp)
		}
	}

	if lookup == nil {
		return ""
	}
	if value, ok := lookup(envName(ProcessConfigKey)); ok {
		return value
	}
	if value, ok := lookup(ProcessConfigKey); ok {
		return value
	}
	return ""
}

// SplitLocations splits a comma-separated eds.config value into templates.
// Surrounding whitespace is trimmed and empty entries are dropped.
func SplitLocations(value string) []string {
	var locations []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			locations = append(locations, part)
		}
	}
	return locations
}

// composePaths builds the effective search list: process option, caller paths, defaults.
func composePaths(processConfig string, additional []string) []string {
	paths := SplitLocations(processConfig)
	paths = append(paths, additional...)
	return append(paths, DefaultPaths()...)
}

// envName maps an option key to its environment variable form ("eds.config" -> "EDS_CONFIG").
func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
