// Package version holds build metadata for the cnam binary.
// Values are injected via -ldflags; when they are absent (go install) they are
// filled from runtime/debug.BuildInfo.
package version
