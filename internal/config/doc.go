// Package config declares the pipeline's option surface and assembles
// the final run configuration.
//
// The flow is: the declared option table (Specs) is materialized as
// flags by internal/options, parsed user input becomes a Raw
// configuration, optional site-level Settings are layered underneath,
// and Reconcile applies the cross-field rules:
//
//  1. the alignment reference must resolve (fatal otherwise),
//  2. a missing chimera reference falls back to the alignment
//     reference with a warning,
//  3. consensus generation is disabled with a warning when its helper
//     executable is absent,
//  4. bounded numeric options are enforced against the table's domains.
//
// The resulting Config is immutable by convention: it is built once at
// startup and only read by the pipeline stages. Environment probing is
// injected through the Environment interface so the rules themselves
// stay pure and unit-testable.
package config
