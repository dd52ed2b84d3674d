// Package render holds the template-selection and section-resolution core.
// A Registry keeps the template families ordered by specificity and picks the
// first whose applicability predicate matches a step; each family describes
// its output as an ordered table of Sections whose predicates and context
// builders are evaluated here, so template text stays free of control logic.
package render
