package sigscan

// Signature is an immutable byte sequence used to locate a structural
// landmark via exact matching. Two signatures with the same name are
// considered the same request by a Scanner, so names must be unique
// within one Scan call.
type Signature struct {
	name    string
	pattern []byte
}

// New creates a signature with the given name and pattern.
// The pattern is copied; the caller may reuse its slice.
func New(name string, pattern []byte) Signature {
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return Signature{name: name, pattern: p}
}

// Name returns the signature's identity within a scan.
func (s Signature) Name() string {
	return s.name
}

// Len returns the pattern length in bytes.
func (s Signature) Len() int {
	return len(s.pattern)
}

// Bytes returns a copy of the pattern.
func (s Signature) Bytes() []byte {
	p := make([]byte, len(s.pattern))
	copy(p, s.pattern)
	return p
}
