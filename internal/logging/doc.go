// Package logging provides a simple leveled logging interface shared by
// the sitekit packages.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the process
//
// The log level is configured via the LOG_LEVEL environment variable;
// DEBUG=true forces debug output regardless of LOG_LEVEL.
package logging
