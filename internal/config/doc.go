// Package config manages user-level settings stored at ~/.cref/config.yaml.
// Every key can also be supplied through a CREF_-prefixed environment
// variable; command-line flags override both.
package config
