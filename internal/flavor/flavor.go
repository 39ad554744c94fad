// Package flavor holds the static tables that map origin-only type names to
// their target-dialect handling.
package flavor

// Policy tells the rewrite how a dictionary entry is resolved.
type Policy int

const (
	// Inline expands the reference into a target type tree.
	Inline Policy = iota
	// Import keeps the reference (possibly renamed) and records the name so
	// an import from the support module is synthesized.
	Import
	// QualifyByState emits the bare target name when the origin name was
	// imported unqualified from the framework module, and the namespace
	// qualified form otherwise.
	QualifyByState
)

func (p Policy) String() string {
	switch p {
	case Inline:
		return "inline"
	case Import:
		return "import"
	case QualifyByState:
		return "qualify-by-state"
	default:
		return "unknown"
	}
}

// SupportModule is the module synthesized imports are taken from.
const SupportModule = "utility-types"

// ReactModule is the framework module whose imports are tracked.
const ReactModule = "react"

// ReactNamespace qualifies framework names that were not imported bare.
const ReactNamespace = "React"
