// Package paths resolves the shell's named filesystem locations: the running
// executable, the supporting-files root, scripts, resources, documentation,
// and a scratch temp directory.
//
// Each location is tried against a fixed priority of candidates (developer
// tree first, then installed layout, then the macOS bundle layout) and the
// winner is memoized for the life of the Resolver. A later filesystem change
// does not alter an answer already given. Lookups never fail outright; an
// unresolvable location comes back as an empty ResolvedPath or the caller's
// default, and the cause is logged once.
package paths
