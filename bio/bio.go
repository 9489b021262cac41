// Package bio provides predicates and conversions for BIO-encoded tag
// sequences. A B-X tag opens an entity of type X and I-X continues it;
// O marks tokens outside any entity.
package bio

import "strings"

// IsBegin reports whether tag opens an entity span.
func IsBegin(tag string) bool {
	return strings.HasPrefix(tag, "B")
}

// IsInside reports whether tag continues an entity span.
func IsInside(tag string) bool {
	return strings.HasPrefix(tag, "I")
}

// IsOutside reports whether tag marks a token outside any entity.
func IsOutside(tag string) bool {
	return tag == "O"
}

// Label returns the entity type carried by a B- or I- tag ("PER" from
// "I-PER"), or "" for tags with no type suffix.
func Label(tag string) string {
	if len(tag) > 2 {
		return tag[2:]
	}
	return ""
}

// TransitionAllowed reports whether curr may directly follow prev. An
// Inside tag may only follow a Begin or Inside tag of the same label;
// every other adjacency is allowed.
func TransitionAllowed(prev, curr string) bool {
	if !IsInside(curr) {
		return true
	}
	if IsOutside(prev) {
		return false
	}
	if (IsBegin(prev) || IsInside(prev)) && Label(prev) != Label(curr) {
		return false
	}
	return true
}
