package cli

import (
	"errors"

	"github.com/grigorig/stcdump/stcisp"
)

// Exit codes distinguish the failing phase, matching the original
// extraction tool's return codes. Code 2, a heap allocation failure
// there, is repurposed for resolver failures, which Go cannot hit the
// original way.
const (
	// ExitUsage covers argument and input-file open failures
	ExitUsage = 1

	// ExitCorruptData covers name addresses that do not resolve
	ExitCorruptData = 2

	// ExitScanPass1 means a fixed landmark signature was not found
	ExitScanPass1 = 3

	// ExitScanPass2 means the computed sentinel record was not found
	ExitScanPass2 = 4

	// ExitNameTable means the Name Table could not be read
	ExitNameTable = 5

	// ExitInfoTable means the Info Table could not be read
	ExitInfoTable = 6
)

// ExitCode maps an Execute error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var sigErr *stcisp.SignatureNotFoundError
	if errors.As(err, &sigErr) {
		if sigErr.Pass == 2 {
			return ExitScanPass2
		}
		return ExitScanPass1
	}

	var truncErr *stcisp.TruncatedReadError
	if errors.As(err, &truncErr) {
		return tableExitCode(truncErr.Region, ExitScanPass1)
	}

	var layoutErr *stcisp.LayoutError
	if errors.As(err, &layoutErr) {
		return tableExitCode(layoutErr.Region, ExitUsage)
	}

	var corruptErr *stcisp.CorruptDataError
	if errors.As(err, &corruptErr) {
		return ExitCorruptData
	}

	return ExitUsage
}

// tableExitCode picks the per-table code for region-scoped errors.
// The terminal record belongs to the Info Table, but a short read there
// means the pass-1 match offset was wrong, hence the fallback.
func tableExitCode(region string, fallback int) int {
	switch region {
	case "name table":
		return ExitNameTable
	case "info table":
		return ExitInfoTable
	default:
		return fallback
	}
}
