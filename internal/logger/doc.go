// Package logger wraps zap for the packager:
//   - a global sugared logger writing console output to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the --log-level flag,
//   - leveled helpers (Info, InfoKV, WarnKV, ...) that read the logger from a context.
//
// stdout is left to the packaging tool, whose output is streamed through.
package logger
