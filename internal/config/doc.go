// Package config manages user-level settings stored at ~/.vsx/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the registry base URL and the host API version used for compatibility
// resolution. Values can be overridden through VSX_-prefixed env variables.
package config
