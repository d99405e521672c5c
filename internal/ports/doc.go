// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Client ports are implemented by outbound adapters and called by the application layer.
//
// Request parameters reuse the query package's param structs and replies the
// graphql transport's Response. Both are leaf packages that do not import
// ports.
package ports
