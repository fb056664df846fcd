// Package pipeline orchestrates one merge invocation: validate inputs,
// confirm ffmpeg availability, resolve the output path, write the concat
// manifest, build and run the ffmpeg command, and verify the result.
//
// The flow is strictly sequential with no retries; the first failing step
// aborts the run with a typed error, and the manifest is deleted on every
// exit path via a deferred Close.
package pipeline
