// Package preflight provides readiness checks for the tools, credentials and
// filesystem paths a carousel run depends on.
//
// The CLI "carousel check" command runs RunAll and CheckSystemDeps and renders
// the results; the pipeline itself never blocks on them, since every missing
// collaborator degrades to a per-unit failure at run time.
package preflight
