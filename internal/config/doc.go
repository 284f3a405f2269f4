// Package config loads the optional intdiv configuration file.
//
// Two encodings are accepted, chosen by file extension:
//
//   - .yaml / .yml: parsed with gopkg.in/yaml.v3
//   - anything else: JSONC (JSON with Comments), stripped with
//     github.com/tidwall/jsonc and parsed with encoding/json
//
// Every key is optional. An absent key leaves the corresponding command-line
// default untouched, and a flag given explicitly on the command line always
// wins over the file.
package config
