// Package validate checks a parsed site configuration against the
// documentation root on disk. One pass collects every unresolved file
// reference and registry miss into a single report, so a build failure
// lists all problems at once instead of stopping at the first.
package validate
