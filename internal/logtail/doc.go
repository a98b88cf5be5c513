// Package logtail reads the end of sprig's own log file for the Diagnostics
// view.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded no
// matter how large the file has grown. Parse decodes the JSON lines written
// by the zap logger into an Entry with level, message and sorted extra
// fields; anything that is not JSON is passed through untouched.
package logtail
