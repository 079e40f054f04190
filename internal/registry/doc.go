// Package registry classifies violations for capping.
//
// The registry decides, per violation, whether it counts toward the score
// cap: only critical and high severities can count, suppressed violations
// never do, and a declarative neutralization rule clears the flag when a
// manual fact proves the violation no longer applies. Neutralization is
// non-destructive: every violation stays on the audit list with its
// evaluation attached.
//
// Manual evidence is asymmetric. An explicit "true" neutralizes a matching
// detected violation; an explicit "false" adds a counted violation even
// when automated detection found nothing. Automated evidence alone never
// overrides a manual denial.
package registry
