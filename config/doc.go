// Package config stores validated configuration types and applies
// access-checked updates to them.
//
// A host defines two forms of its config: the checked form T that is stored,
// and an unchecked form U with raw address strings that implements Unchecked.
// A Store built over a collections schema loads T, converts it to U, applies
// the caller's updates, validates the result back into T and persists it, so
// an unvalidated config can never be written.
//
// Values are stored as JSON, so config types only need json tags, not
// protobuf definitions.
package config
