// Package rules contains the built-in consistency rules.
//
// Each file defines one rule and registers it from init(), so importing
// this package (usually with a blank import) makes the full catalog
// available to the check analyzer:
//
//	dates    GD01 birth-after-death, GD02 death-in-future,
//	         GD03 birth-in-future
//	lineage  GD04 parent-born-after-child
//	marriage GD05 before-spouse-birth, GD06 after-child-birth
//
// Rules only fire on directly comparable, sufficiently precise date
// pairs; missing data never produces a finding.
package rules
