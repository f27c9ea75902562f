// Command siteinfo inspects site state snapshot fixtures from the command
// line.
//
// It loads a snapshot (JSON or YAML), runs raw records through the site
// materializer with example attribute providers, and prints the computed
// sites as indented JSON.
//
// Usage:
//
//	siteinfo <command> <state-file> [args]
//
// Commands:
//
//	sites     List every computed site in the snapshot.
//	site      Show the computed site for an ID or slug. A numeric
//	          argument is tried as a site ID first, then as a slug.
//	selected  Show the computed site for the snapshot's selected site ID.
//
// Exit status is non-zero when the snapshot cannot be loaded or the
// requested site does not exist.
package main
