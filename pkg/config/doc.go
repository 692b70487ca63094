// Package config loads the per-run validation settings: the reference year,
// the timezone, and the allowed class durations.
//
// Settings come from a YAML file, environment variables (with optional .env
// support), or both; environment values override the file. The resolved
// Settings convert into a validator.Context via Settings.Context, which is
// the only form the validation core accepts — the core itself never reads
// ambient configuration.
package config
