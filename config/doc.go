// FILE: bouquet/config/doc.go

// Package config locates configuration files over an ordered list of search
// locations and decodes them as YAML, properties, JSON or TOML.
//
// A location template is a URL (http, https, file, ftp), a "classpath:"
// prefixed name in the embedded resource namespace, a filesystem path, or a
// bare name tried on the filesystem and then in the embedded namespace.
// A template may hold one "%s" placeholder, replaced by the requested filename.
//
// Search order (first hit wins):
//  1. Templates from the eds.config process option (comma-separated)
//  2. Caller supplied templates
//  3. Built-in defaults: /configs/%s, /etc/<app>/configs/%s,
//     /etc/<app>/configuration/%s, ../etc/%s, ./%s
//
// Quick Start:
//
//	type Settings struct {
//	    Host string `yaml:"host"`
//	    Port int    `yaml:"port"`
//	}
//
//	finder := config.NewFinder("/opt/myapp/%s")
//	settings, err := config.AsStruct[Settings](finder, "settings.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The eds.config option is read from "--eds.config=..." or "-Deds.config=..."
// arguments, or from the EDS_CONFIG environment variable:
//
//	EDS_CONFIG=/srv/conf/%s,https://conf.example.com/%s ./myapp
//
// Embedded resources stand in for a classpath. Register them at init time:
//
//	//go:embed defaults
//	var defaults embed.FS
//
//	func init() {
//	    sub, _ := fs.Sub(defaults, "defaults")
//	    config.RegisterResources(sub)
//	}
//
// Finders are immutable, hold no open handles and cache nothing, so they are
// safe for concurrent use and cheap to create per request.
package config
