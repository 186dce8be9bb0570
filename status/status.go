// Package status defines the ReturnType enumeration shared by every public
// algorithm entry point. Expected negative outcomes — a non-planar graph,
// no feasible insertion under constraints, an exceeded time limit — are
// reported through ReturnType, never through an error or a panic. Callers
// must check the ReturnType before trusting output parameters.
package status

// ReturnType classifies the outcome of an algorithm call.
type ReturnType int

const (
	// Feasible: a valid (not necessarily optimal) solution was produced.
	Feasible ReturnType = iota

	// Optimal: the produced solution is provably optimal.
	Optimal

	// NoFeasibleSolution: no solution exists under the given constraints.
	NoFeasibleSolution

	// TimeoutFeasible: the time limit expired, but the partial work done so
	// far forms a valid solution that is returned to the caller.
	TimeoutFeasible

	// TimeoutInfeasible: the time limit expired before any valid solution
	// was produced; outputs are unusable.
	TimeoutInfeasible

	// Error: the computation failed for a reason other than infeasibility
	// or timeout (e.g. invalid input detected at run time).
	Error
)

// IsSolution reports whether the outcome carries a usable solution.
func (r ReturnType) IsSolution() bool {
	return r == Feasible || r == Optimal || r == TimeoutFeasible
}

// IsTimeout reports whether the outcome was cut short by the time limit.
func (r ReturnType) IsTimeout() bool {
	return r == TimeoutFeasible || r == TimeoutInfeasible
}

// String returns the canonical name of the outcome.
func (r ReturnType) String() string {
	switch r {
	case Feasible:
		return "Feasible"
	case Optimal:
		return "Optimal"
	case NoFeasibleSolution:
		return "NoFeasibleSolution"
	case TimeoutFeasible:
		return "TimeoutFeasible"
	case TimeoutInfeasible:
		return "TimeoutInfeasible"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}
