// Package vocab provides a bijective mapping between strings and dense
// integer ids.
package vocab

// Vocab assigns insertion-ordered ids to strings. Ids are dense and
// stable for the lifetime of the vocabulary.
type Vocab struct {
	toID  map[string]int
	toStr []string
}

// New creates an empty vocabulary.
func New() *Vocab {
	return &Vocab{toID: make(map[string]int)}
}

// Add returns the id for s, assigning the next free id if s is unseen.
func (v *Vocab) Add(s string) int {
	if id, ok := v.toID[s]; ok {
		return id
	}
	id := len(v.toStr)
	v.toID[s] = id
	v.toStr = append(v.toStr, s)
	return id
}

// IndexOf returns the id for s, or -1 if s was never added.
func (v *Vocab) IndexOf(s string) int {
	if id, ok := v.toID[s]; ok {
		return id
	}
	return -1
}

// Contains reports whether s has an id.
func (v *Vocab) Contains(s string) bool {
	_, ok := v.toID[s]
	return ok
}

// Get returns the string with id i. It panics when i is out of range,
// matching slice indexing.
func (v *Vocab) Get(i int) string {
	return v.toStr[i]
}

// Len returns the number of entries.
func (v *Vocab) Len() int {
	return len(v.toStr)
}
