// internal/config/config.go
package config

import (
	"fmt"

	"rnapipe/internal/params"
)

// ClusteringMethod is the closed set of distance algorithms mothur
// accepts for OTU clustering.
type ClusteringMethod string

const (
	MethodNearest  ClusteringMethod = "nearest"
	MethodAverage  ClusteringMethod = "average"
	MethodFurthest ClusteringMethod = "furthest"
)

// ParseClusteringMethod maps a token onto the closed method set.
func ParseClusteringMethod(s string) (ClusteringMethod, error) {
	switch ClusteringMethod(s) {
	case MethodNearest, MethodAverage, MethodFurthest:
		return ClusteringMethod(s), nil
	}
	return "", &params.DomainError{
		Name:    OptClusteringMethod,
		Value:   s,
		Choices: []string{string(MethodNearest), string(MethodAverage), string(MethodFurthest)},
	}
}

// Raw is the RawConfiguration: one typed value per declared option.
// Built once per invocation and only read afterwards.
type Raw map[string]any

// Config is the FinalConfiguration handed to the pipeline stages.
// It is a plain value; nothing mutates it after Reconcile returns it.
type Config struct {
	InputFile string
	RawData   string

	MinAccuracy float64
	MinLength   int
	MinSNR      float64
	MinQV       int
	Fraction    float64

	Distance         float64
	Step             float64
	ClusteringMethod ClusteringMethod
	PreclusterDiffs  int
	MinClusterSize   int

	AlignmentReference string
	ChimeraReference   string

	NumProcesses    int
	OutputDir       string
	SubCluster      bool
	EnableIteration bool
	EnableConsensus bool

	Blasr  string
	Mothur string

	Debug    bool
	TestMode bool
}

// FromRaw converts a raw configuration into the typed form. Every
// declared option must be present; the builder guarantees that.
func FromRaw(raw Raw) (Config, error) {
	var cfg Config
	var err error

	get := func(name string) any {
		v, ok := raw[name]
		if !ok && err == nil {
			err = fmt.Errorf("option %q missing from raw configuration", name)
		}
		return v
	}

	str := func(name string) string { s, _ := get(name).(string); return s }
	num := func(name string) float64 { f, _ := get(name).(float64); return f }
	integer := func(name string) int { i, _ := get(name).(int); return i }
	boolean := func(name string) bool { b, _ := get(name).(bool); return b }

	cfg.InputFile = str(OptInputFile)
	cfg.RawData = str(OptRawData)
	cfg.MinAccuracy = num(OptMinAccuracy)
	cfg.MinLength = integer(OptMinLength)
	cfg.MinSNR = num(OptMinSNR)
	cfg.MinQV = integer(OptMinQV)
	cfg.Fraction = num(OptFraction)
	cfg.Distance = num(OptDistance)
	cfg.Step = num(OptStep)
	cfg.PreclusterDiffs = integer(OptPreclusterDiffs)
	cfg.MinClusterSize = integer(OptMinClusterSize)
	cfg.AlignmentReference = str(OptAlignmentReference)
	cfg.ChimeraReference = str(OptChimeraReference)
	cfg.NumProcesses = integer(OptNumProcesses)
	cfg.OutputDir = str(OptOutputDir)
	cfg.SubCluster = boolean(OptSubCluster)
	cfg.EnableIteration = boolean(OptEnableIteration)
	cfg.EnableConsensus = boolean(OptEnableConsensus)
	cfg.Blasr = str(OptBlasr)
	cfg.Mothur = str(OptMothur)
	cfg.Debug = boolean(OptDebug)
	cfg.TestMode = boolean(OptTestMode)
	if err != nil {
		return Config{}, err
	}

	method, err := ParseClusteringMethod(str(OptClusteringMethod))
	if err != nil {
		return Config{}, err
	}
	cfg.ClusteringMethod = method
	return cfg, nil
}

// numericValue looks up a bounded numeric field by option name for the
// table-driven domain enforcement in Reconcile.
func (c Config) numericValue(name string) (float64, bool) {
	switch name {
	case OptMinAccuracy:
		return c.MinAccuracy, true
	case OptMinLength:
		return float64(c.MinLength), true
	case OptMinSNR:
		return c.MinSNR, true
	case OptMinQV:
		return float64(c.MinQV), true
	case OptFraction:
		return c.Fraction, true
	case OptDistance:
		return c.Distance, true
	case OptStep:
		return c.Step, true
	case OptPreclusterDiffs:
		return float64(c.PreclusterDiffs), true
	case OptMinClusterSize:
		return float64(c.MinClusterSize), true
	case OptNumProcesses:
		return float64(c.NumProcesses), true
	}
	return 0, false
}
