// Package translate renders settings JSON in the other formats emucfg show
// supports.
//
// YAML output keeps the key order of the JSON document. TOML output has
// sorted keys, drops null values (TOML has no null) and writes whole
// numbers as integers.
package translate
