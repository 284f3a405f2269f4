// Package render writes a division Outcome to an output stream in one of
// the supported formats (text, json, yaml).
//
// Text is the default and reproduces the interactive contract exactly: a
// single line such as "Result: 3". The json and yaml formats emit the full
// Outcome for scripts; yaml is serialized with gopkg.in/yaml.v3.
package render
