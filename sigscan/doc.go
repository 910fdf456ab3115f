// Package sigscan provides streaming multi-signature byte scanning.
//
// # Overview
//
// A Scanner reads a byte source in fixed-size chunks and tracks partial
// matches against a small set of exact byte signatures simultaneously,
// reporting the absolute offset of each signature's first occurrence in a
// single pass over the input.
//
// Match state survives chunk boundaries: a signature whose bytes straddle
// two consecutive chunks is still detected, regardless of the configured
// chunk size.
//
// # Usage
//
// Scan a file for two signatures at once:
//
//	header := sigscan.New("header", []byte{0x7F, 0x45, 0x4C, 0x46})
//	footer := sigscan.New("footer", []byte{0x17, 0x00, 0x00, 0x01})
//
//	f, err := os.Open("image.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	offsets, err := sigscan.NewScanner().Scan(f, header, footer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("header at 0x%X\n", offsets["header"])
//
// # Matching semantics
//
// Each signature is matched independently; a single input byte may start,
// continue, or break the partial matches of several signatures at once.
// On a mismatch the signature's state resets and the same byte is
// immediately reconsidered as a new match start. The scanner does not
// backtrack into already-consumed bytes: a failed partial match can
// consume the first bytes of a true occurrence that overlaps it, so a
// self-overlapping pattern ("aab" inside "aaab") can be missed when it
// follows a run of its own leading bytes. Callers choose signatures
// whose opening bytes do not repeat in the surrounding input.
//
// Scanning stops as soon as every requested signature has been found, or
// when the input is exhausted, in which case a *NotFoundError lists the
// signatures that were never seen.
package sigscan
