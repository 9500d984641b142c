// Package kernel provides the shared domain primitives of the accounts system.
//
// The package includes:
//   - ID[E]: a UUIDv7 identifier whose type parameter names the entity it
//     identifies, so identifiers of different entity kinds cannot be mixed up
//     at compile time although they share one 16-byte runtime layout.
//
// Identifiers sort by creation time, render and parse the canonical
// 8-4-4-4-12 hexadecimal text, and persist through database/sql and
// encoding.TextMarshaler. They are immutable and safe for concurrent use.
package kernel
