// Package odimtree implements component C1: the Object/Dataset/Data/
// Quality tree over a backend.Store, including the dense 1..N child
// numbering invariant and the version-parameterised mandatory-attribute
// policy described in the root spec's Design Notes (one implementation
// parameterised by schema.Version, not duplicated v2.0/v2.1 class trees).
//
// odimtree raises only the closed error taxonomy internal/codec defines
// (*codec.FormatError, *codec.MissingAttributeError,
// *codec.InvalidArgumentError, ...); it does not define error types of its
// own, so every caller checking error kinds has one taxonomy to match
// against regardless of which package raised the error.
package odimtree
