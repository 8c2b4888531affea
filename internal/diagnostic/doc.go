// Package diagnostic collects structured findings produced while compiling
// mapping templates.
//
// Key capabilities:
//   - Error and warning collection with stable codes
//   - Template and path context for every finding
//   - "Did you mean" suggestions attached to a finding
//   - A combined error value for callers that only need pass/fail
package diagnostic
