// Package fetch resolves sound references to local files. Remote URLs
// are downloaded once per process into a cache of temporary files that
// is swept on shutdown.
package fetch
