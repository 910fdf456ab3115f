package sigscan

import (
	"errors"
	"fmt"
	"io"
)

// Offsets maps a signature name to the absolute offset of the first byte
// of its first occurrence in the scanned input.
type Offsets map[string]int64

// maxConsecutiveEmptyReads is how many successive (0, nil) reads the
// scan tolerates before giving up with io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Scanner locates the first occurrence of each of a set of byte
// signatures in a single streaming pass over an input.
//
// A Scanner carries no per-scan state and may be reused across calls.
type Scanner struct {
	config Config
}

// NewScanner creates a Scanner with the given options.
//
// Example:
//
//	sc := sigscan.NewScanner(
//	    sigscan.WithChunkSize(8192),
//	    sigscan.WithLogger(logger),
//	)
func NewScanner(opts ...Option) *Scanner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Scanner{config: cfg}
}

// matchState is the per-signature automaton state. progress counts the
// bytes matched so far; zero means no active match. start is the absolute
// offset of the first matched byte and is meaningful only while
// progress > 0 or after found.
type matchState struct {
	sig      Signature
	progress int
	start    int64
	found    bool
}

// feed advances the automaton with the byte at absolute offset off.
// On a mismatch the state resets and the same byte is reconsidered as a
// potential new match start.
func (m *matchState) feed(off int64, b byte) {
	if m.found {
		return
	}
	if m.progress > 0 {
		if m.sig.pattern[m.progress] == b {
			m.progress++
			if m.progress == len(m.sig.pattern) {
				m.found = true
			}
			return
		}
		m.progress = 0
	}
	if m.sig.pattern[0] == b {
		m.start = off
		m.progress = 1
		if m.progress == len(m.sig.pattern) {
			m.found = true
		}
	}
}

// Scan reads r to completion or until every signature has been found,
// and returns the offset of each signature's first occurrence.
//
// Signatures must be non-empty and uniquely named. If the input ends
// before all signatures match, Scan returns a *NotFoundError naming the
// missing ones; offsets found up to that point are discarded.
func (s *Scanner) Scan(r io.Reader, sigs ...Signature) (Offsets, error) {
	if len(sigs) == 0 {
		return nil, errors.New("no signatures given")
	}

	states := make([]*matchState, 0, len(sigs))
	seen := make(map[string]struct{}, len(sigs))
	for _, sig := range sigs {
		if sig.Len() == 0 {
			return nil, fmt.Errorf("signature %q is empty", sig.Name())
		}
		if _, dup := seen[sig.Name()]; dup {
			return nil, fmt.Errorf("duplicate signature name %q", sig.Name())
		}
		seen[sig.Name()] = struct{}{}
		states = append(states, &matchState{sig: sig})
	}

	buf := make([]byte, s.config.ChunkSize)
	var offset int64
	remaining := len(states)
	emptyReads := 0

scan:
	for {
		n, err := r.Read(buf)
		if n == 0 && err == nil {
			// The io.Reader contract permits (0, nil); bound it so a
			// reader that never progresses cannot spin the scan forever.
			emptyReads++
			if emptyReads == maxConsecutiveEmptyReads {
				return nil, fmt.Errorf("read input: %w", io.ErrNoProgress)
			}
			continue
		}
		emptyReads = 0
		for i := 0; i < n; i++ {
			b := buf[i]
			for _, st := range states {
				if st.found {
					continue
				}
				st.feed(offset+int64(i), b)
				if st.found {
					s.config.Logger.Debug().
						Str("signature", st.sig.Name()).
						Int64("offset", st.start).
						Msg("signature matched")
					remaining--
				}
			}
			if remaining == 0 {
				offset += int64(i) + 1
				break scan
			}
		}
		offset += int64(n)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}

	if remaining > 0 {
		nf := &NotFoundError{BytesScanned: offset}
		for _, st := range states {
			if !st.found {
				nf.Missing = append(nf.Missing, st.sig.Name())
			}
		}
		return nil, nf
	}

	offsets := make(Offsets, len(states))
	for _, st := range states {
		offsets[st.sig.Name()] = st.start
	}
	return offsets, nil
}
