// Package contract implements the defensive layer for programmer-error
// preconditions: violated contracts panic with a diagnostic message in
// debug builds (build tag "planardebug") and compile to no-ops otherwise.
//
// Expected negative outcomes (non-planar input, timeouts, infeasibility)
// are NOT contract violations; those travel through status.ReturnType and
// sentinel errors. Assert only what a correct caller can never trigger.
package contract
