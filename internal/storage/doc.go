// Package storage defines the byte-level persistence contract shared by the
// entity repositories: the key scheme, the value codec and the Engine
// interface implemented by the bolt and postgres subpackages.
//
// Primary keys have the form "{kind}:{id}" and secondary index keys the form
// "{kind}_{field}:{value}". Every prefix ends with the ':' separator and
// names are restricted to [a-z_], so the prefix of one kind can never be a
// proper prefix of another. Scanning a kind prefix therefore yields exactly
// the records of that kind, in key order, which carries no temporal meaning.
package storage
