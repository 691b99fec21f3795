// Package registry implements a client for Open-VSX-compatible extension
// registries. It covers the search and query endpoints, and resolves the
// latest extension version whose declared engine range is compatible with a
// configured host version. The HTTP round trips are delegated to a Transport
// so the client itself stays free of connection, timeout, and retry policy.
package registry
