package paths

// Strategy records how a path was resolved.
type Strategy int

const (
	StrategyNone Strategy = iota
	// StrategyOverride is an explicitly configured location.
	StrategyOverride
	// StrategyDeveloper is a sibling inside a source checkout.
	StrategyDeveloper
	// StrategyInstalled is the regular installed package layout.
	StrategyInstalled
	// StrategyBundle is the macOS application bundle layout.
	StrategyBundle
	// StrategyCallerDefault means the caller's fallback was returned.
	StrategyCallerDefault
)

func (s Strategy) String() string {
	switch s {
	case StrategyOverride:
		return "override"
	case StrategyDeveloper:
		return "developer"
	case StrategyInstalled:
		return "installed"
	case StrategyBundle:
		return "bundle"
	case StrategyCallerDefault:
		return "caller-default"
	default:
		return "unresolved"
	}
}

// ResolvedPath is an absolute path and the strategy that produced it.
type ResolvedPath struct {
	Path     string
	Strategy Strategy
}

// Empty reports whether nothing was resolved.
func (p ResolvedPath) Empty() bool {
	return p.Path == ""
}

func (p ResolvedPath) String() string {
	return p.Path
}
