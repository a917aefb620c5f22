// Package contrib provides additional functionality and utilities
// for the Cascade Go client.
//
// Everything in this package is intended to extend the core client with
// tools that are not part of the library itself.
//
// Note that this package is outside of the backward compatibility guarantees
// provided by the core client. Changes to this package may introduce breaking
// changes without following semantic versioning.
//
// [github.com/cascadews/cascade.go/contrib/cascadedump] walks a folder tree of a
// site and writes every materialized asset to a CBOR dump with a JSON manifest.
package contrib
