// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Sky view for loaded collections, sed subcommand
// 0.2.0 - Plugin discovery from object_types config, box regions
// 0.1.0 - Initial release: brighter_stars object type, list/types commands
