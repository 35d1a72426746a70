// Package log provides structured logging for dotnetvuln, built on top of
// the standard slog package.
//
// Logs always go to standard error so they never mix with the report on
// standard output. By default only warnings and errors are emitted; verbose
// mode enables debug output.
//
// # URL Sanitization
//
// Advisory URLs and NuGet source URLs can carry credentials or tokens in
// their user info or query string (private feeds commonly do). URLHandler
// rewrites every URL-valued string attribute to scheme, host and path only
// before it reaches the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("vulnerable package",
//	    "package", "Newtonsoft.Json",
//	    "advisory", "https://github.com/advisories/GHSA-5crp-9r3c-p9vr",
//	)
package log
