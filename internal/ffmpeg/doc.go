// Package ffmpeg builds and executes the ffmpeg concat invocation.
//
// Build is pure construction: it returns the full argument vector (argv[0]
// included) so the command can be unit-tested without running anything.
// Execute runs a built vector synchronously, capturing stdout and stderr;
// a non-zero exit becomes an *ExecError carrying the captured stderr.
//
// The tool depends only on ffmpeg's stable surface: the concat demuxer
// (-f concat -safe 0 -i <list>), codec selection (-c:v/-c:a/-b:v), forced
// overwrite (-y), and the exit status convention.
package ffmpeg
