// internal/config/reconcile.go
package config

import (
	"rnapipe/internal/params"
)

// Environment produces the environment facts the reconciliation rules
// depend on. The real implementation is env.Prober; tests inject fakes
// so the rule logic stays pure.
type Environment interface {
	// FindFile returns the resolved absolute path of an existing file,
	// or "" when it cannot be located.
	FindFile(path string) string
	// FindExecutable resolves a name against the search path, or "".
	FindExecutable(name string) string
}

// Reconcile runs the ordered reconciliation rules over cfg and returns
// the final configuration plus any non-fatal warnings. A non-nil error
// aborts assembly; no partial configuration is returned alongside one.
//
// Reconcile is idempotent: feeding its output back in (with the same
// environment) yields an identical configuration and no new warnings.
func Reconcile(cfg Config, environ Environment) (Config, []string, error) {
	out := cfg
	var warns []string

	// Rule 1: the alignment reference is mandatory. No fallback.
	alignRef := environ.FindFile(out.AlignmentReference)
	if alignRef == "" {
		return Config{}, nil, params.Configf(
			"alignment reference %q not found (and no default 16S alignment detected)",
			out.AlignmentReference)
	}
	out.AlignmentReference = alignRef

	// Rule 2: a missing chimera reference degrades to the alignment
	// reference rather than failing.
	if chimeraRef := environ.FindFile(out.ChimeraReference); chimeraRef != "" {
		out.ChimeraReference = chimeraRef
	} else {
		warns = append(warns, "chimera reference "+out.ChimeraReference+
			" not found, falling back to alignment reference")
		out.ChimeraReference = out.AlignmentReference
	}

	// Rule 3: consensus generation requires its helper on PATH. The
	// flag must never stay true when the helper is confirmed absent.
	if out.EnableConsensus && environ.FindExecutable(ConsensusTool) == "" {
		warns = append(warns, "no copy of "+ConsensusTool+" detected on PATH, disabling consensus")
		out.EnableConsensus = false
	}

	// Rule 4: numeric domains, driven by the declared option table.
	for _, sp := range Specs() {
		if sp.Min == nil && sp.Max == nil {
			continue
		}
		v, ok := out.numericValue(sp.Name)
		if !ok {
			continue
		}
		var err error
		if sp.Kind == params.KindInt {
			err = params.ValidateInt(sp.Name, int(v), intBound(sp.Min), intBound(sp.Max))
		} else {
			err = params.ValidateFloat(sp.Name, v, sp.Min, sp.Max)
		}
		if err != nil {
			return Config{}, nil, err
		}
	}

	return out, warns, nil
}

// Assemble is the full Builder→Reconciler path: type the raw
// configuration and run the reconciliation rules.
func Assemble(raw Raw, environ Environment) (Config, []string, error) {
	cfg, err := FromRaw(raw)
	if err != nil {
		return Config{}, nil, err
	}
	return Reconcile(cfg, environ)
}

func intBound(b *float64) *int {
	if b == nil {
		return nil
	}
	v := int(*b)
	return &v
}
