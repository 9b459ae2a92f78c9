package sequence

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCollatz is the canonical name for the Collatz generator.
	MethodCollatz = "Collatz"
	// MethodTrajectory is the canonical name for the single-start Trajectory builder.
	MethodTrajectory = "Trajectory"
	// MethodValidate is the canonical name for Path.Validate.
	MethodValidate = "Validate"
)

//-----------------------------------------------------------------------------
// Minimums and defaults
//-----------------------------------------------------------------------------

// MinPathVertices is the smallest meaningful path: one segment, two vertices.
const MinPathVertices = 2

// MinCollatzN is the smallest n accepted by Collatz; the range is [2..n].
const MinCollatzN = 2

// DefaultStart is the first start value of a Collatz range.
const DefaultStart = 2

// terminalValue is the value every Collatz trajectory ends on.
const terminalValue int64 = 1
