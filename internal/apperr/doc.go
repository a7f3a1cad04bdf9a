// Package apperr defines shared error sentinels for the cnam application.
// It is a leaf package with no internal imports, so the lookup core, the
// transport and the response decoders can all use the sentinels without
// creating import cycles.
package apperr
