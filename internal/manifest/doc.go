// Package manifest validates cref's YAML documents (the embedded target
// manifest and the user config file) against JSON Schemas embedded from the
// schema directory.
package manifest
