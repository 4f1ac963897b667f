// Package status derives display statuses from raw record fields.
//
// Derived values are never stored: certifications are classified from their completion flag
// and expiration date against the current calendar day, and raw project status strings are
// folded into the canonical domain.ProjectStatus vocabulary.
package status
