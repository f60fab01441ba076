// internal/config/source.go
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// SettingsEnvVar names the environment variable consulted for a
// settings-file path when --settings is not given.
const SettingsEnvVar = "RNAPIPE_SETTINGS"

// Settings carries site-level default overrides loaded from a TOML
// file. Pointer fields distinguish "not set" from a zero value; a nil
// field leaves the declared default in place. CLI flags still win over
// anything set here.
type Settings struct {
	MinAccuracy        *float64 `toml:"min_accuracy"`
	MinLength          *int     `toml:"min_length"`
	MinSNR             *float64 `toml:"min_snr"`
	Distance           *float64 `toml:"distance"`
	Step               *float64 `toml:"step"`
	NumProcesses       *int     `toml:"num_processes"`
	Fraction           *float64 `toml:"fraction"`
	OutputDir          *string  `toml:"output_dir"`
	MinQV              *int     `toml:"min_qv"`
	MinClusterSize     *int     `toml:"min_cluster_size"`
	ClusteringMethod   *string  `toml:"clustering_method"`
	PreclusterDiffs    *int     `toml:"precluster_diffs"`
	AlignmentReference *string  `toml:"alignment_reference"`
	ChimeraReference   *string  `toml:"chimera_reference"`
	SubCluster         *bool    `toml:"sub_cluster"`
	EnableIteration    *bool    `toml:"enable_iteration"`
	EnableConsensus    *bool    `toml:"enable_consensus"`
	Blasr              *string  `toml:"blasr"`
	Mothur             *string  `toml:"mothur"`
}

// LoadSettings reads a settings file. A missing file is not an error
// when the path came from the environment rather than an explicit flag;
// a present but malformed file always is.
func LoadSettings(path string, explicit bool) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return s, nil
		}
		return s, fmt.Errorf("failed to load settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

// value returns the override for an option name, if any.
func (s Settings) value(name string) (any, bool) {
	switch name {
	case OptMinAccuracy:
		if s.MinAccuracy != nil {
			return *s.MinAccuracy, true
		}
	case OptMinLength:
		if s.MinLength != nil {
			return *s.MinLength, true
		}
	case OptMinSNR:
		if s.MinSNR != nil {
			return *s.MinSNR, true
		}
	case OptDistance:
		if s.Distance != nil {
			return *s.Distance, true
		}
	case OptStep:
		if s.Step != nil {
			return *s.Step, true
		}
	case OptNumProcesses:
		if s.NumProcesses != nil {
			return *s.NumProcesses, true
		}
	case OptFraction:
		if s.Fraction != nil {
			return *s.Fraction, true
		}
	case OptOutputDir:
		if s.OutputDir != nil {
			return *s.OutputDir, true
		}
	case OptMinQV:
		if s.MinQV != nil {
			return *s.MinQV, true
		}
	case OptMinClusterSize:
		if s.MinClusterSize != nil {
			return *s.MinClusterSize, true
		}
	case OptClusteringMethod:
		if s.ClusteringMethod != nil {
			return *s.ClusteringMethod, true
		}
	case OptPreclusterDiffs:
		if s.PreclusterDiffs != nil {
			return *s.PreclusterDiffs, true
		}
	case OptAlignmentReference:
		if s.AlignmentReference != nil {
			return *s.AlignmentReference, true
		}
	case OptChimeraReference:
		if s.ChimeraReference != nil {
			return *s.ChimeraReference, true
		}
	case OptSubCluster:
		if s.SubCluster != nil {
			return *s.SubCluster, true
		}
	case OptEnableIteration:
		if s.EnableIteration != nil {
			return *s.EnableIteration, true
		}
	case OptEnableConsensus:
		if s.EnableConsensus != nil {
			return *s.EnableConsensus, true
		}
	case OptBlasr:
		if s.Blasr != nil {
			return *s.Blasr, true
		}
	case OptMothur:
		if s.Mothur != nil {
			return *s.Mothur, true
		}
	}
	return nil, false
}

// Apply folds the settings into a raw configuration for every option
// the user did not supply on the command line. Enum overrides are still
// checked against the declared choice set.
func (s Settings) Apply(raw Raw, userSet func(name string) bool) (Raw, error) {
	for _, sp := range Specs() {
		if sp.Positional || userSet(sp.Name) {
			continue
		}
		v, ok := s.value(sp.Name)
		if !ok {
			continue
		}
		if str, isStr := v.(string); isStr && len(sp.Choices) > 0 {
			coerced, err := sp.Coerce(str)
			if err != nil {
				return nil, err
			}
			v = coerced
		}
		raw[sp.Name] = v
	}
	return raw, nil
}
