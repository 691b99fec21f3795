// Package manifest parses and validates VS Code extension manifests
// (package.json). The registry serves each version's manifest at the URL
// carried in its files map; this package turns that document into a typed
// struct and checks it against an embedded JSON schema covering the fields
// the client relies on (name, publisher, version, engines).
package manifest
