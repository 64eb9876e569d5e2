// Package engine provides a headless stand-in for the emulation core.
//
// [Loopback] accepts every section the configuration applies, records the
// last value per section, and reports a fixed list of audio output devices.
// The CLI drives the full load and apply lifecycle against it, and tests use
// it as a concrete apply target.
package engine
