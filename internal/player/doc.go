// Package player implements audio playback backends that delegate to
// native command-line utilities (gst-play-1.0, ffplay, aplay/mpg123,
// afplay) or to the Windows multimedia API. It also provides the
// registry of backend names and the OS-dependent default selection.
package player
