// Package config resolves the settings of a generation run. Settings are
// layered: built-in defaults, then the .tryfrom.yaml file, then package
// directives, then command line flags.
package config

// Global constants for the application.
const (
	Application = "tryfrom"
	Description = "Derive conversions between dynamic values and typed records"
	WebSite     = "https://github.com/origadmin/tryfrom"
	UI          = `
 _              __
| |_ _ __ _  _ / _|_ _ ___ _ __
|  _| '_| || |  _| '_/ _ \ '  \
 \__|_|  \_, |_| |_| \___/_|_|_|
         |__/
`
)

const (
	// DefaultConfigFile is looked up in the package directory when no config
	// file is named explicitly.
	DefaultConfigFile = ".tryfrom.yaml"
	// DefaultValuePackage is the runtime package generated code calls into.
	DefaultValuePackage = "github.com/origadmin/tryfrom/value"
	// GeneratedSuffix marks files written by code generators. Such files are
	// never scanned for directives.
	GeneratedSuffix = ".gen.go"
	// OutputSuffix is appended to the package name to form the default
	// output file name.
	OutputSuffix = "_tryfrom" + GeneratedSuffix
	// Header is the first line of every generated file.
	Header = "// Code generated by " + Application + ". DO NOT EDIT."
)
