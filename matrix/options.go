// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.
//
// These constants are the single source of truth for tolerances and the
// finite-value guard. Dense constructors read DefaultValidateNaNInf; callers
// of ValidateSymmetric and ValidateBinary pass DefaultEpsilon unless they have
// a reason to be stricter.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)
