// Package config resolves flat key/value settings from the process
// environment for all meterkit packages.
//
// Every package in this library declares its own Config struct (see each
// package's configs.go) together with a FromEnv constructor. Those
// constructors use the helpers in this package to resolve individual keys,
// so the whole library is driven by a single, documented set of environment
// variables resolved once at process start.
//
// # Resolution Order
//
// Values are looked up in the process environment. Before the first lookup,
// Load may be called to merge a .env file into the environment, which is
// convenient for local development:
//
//	config.Load()             // loads ".env" when present, silently skipped otherwise
//	cfg := meter.FromEnv()    // resolves METERKIT_* keys
//
// # Duration Values
//
// Duration keys accept the usual Go suffixes, including "ms", "s", "m" and
// "h" (for example "2s", "1500ms", "10m"). A value without a valid suffix
// falls back to the documented default rather than failing, so a broken
// environment never prevents instrumentation from coming up.
package config
