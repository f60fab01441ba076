// internal/config/options.go
package config

import "rnapipe/internal/params"

// Pipeline defaults and numeric domains.
const (
	DefaultNumProcesses    = 1
	DefaultDistance        = 0.03
	DefaultStep            = 0.015
	DefaultMinAccuracy     = 0.99
	DefaultMinQV           = 15
	DefaultFraction        = 0.8
	DefaultMinLength       = 500
	DefaultMinSNR          = 3.0
	DefaultPreclusterDiffs = 4
	DefaultMinClusterSize  = 3

	MinDistance = 0.001
	MaxDistance = 0.5

	DefaultAlignmentReference = "silva.both.align"
	DefaultChimeraReference   = "silva.gold.align"
	DefaultOutputDir          = "rna_pipeline_run"
	DefaultMothur             = "mothur"

	// ConsensusTool is the helper executable consensus generation needs.
	ConsensusTool = "gcon.py"
)

// Option names. One params.Spec exists per name; the table below is the
// single source of truth for types, defaults, and domains.
const (
	OptInputFile          = "input_file"
	OptRawData            = "raw_data"
	OptMinAccuracy        = "min_accuracy"
	OptMinLength          = "min_length"
	OptMinSNR             = "min_snr"
	OptDistance           = "distance"
	OptStep               = "step"
	OptNumProcesses       = "num_processes"
	OptFraction           = "fraction"
	OptOutputDir          = "output_dir"
	OptMinQV              = "min_qv"
	OptMinClusterSize     = "min_cluster_size"
	OptClusteringMethod   = "clustering_method"
	OptPreclusterDiffs    = "precluster_diffs"
	OptAlignmentReference = "alignment_reference"
	OptChimeraReference   = "chimera_reference"
	OptSubCluster         = "sub_cluster"
	OptEnableIteration    = "enable_iteration"
	OptEnableConsensus    = "enable_consensus"
	OptBlasr              = "blasr"
	OptMothur             = "mothur"
	OptDebug              = "debug"
	OptTestMode           = "test_mode"
)

var specs = []params.Spec{
	{Name: OptInputFile, Kind: params.KindString, Positional: true,
		Usage: "file of rRNA sequencing data to analyze"},
	{Name: OptRawData, Aliases: []string{"r"}, Kind: params.KindString, Default: "",
		Usage: "BasH5, BaxH5 or FOFN of raw H5-format sequence data"},
	{Name: OptMinAccuracy, Aliases: []string{"a"}, Kind: params.KindFloat, Default: DefaultMinAccuracy,
		Usage: "minimum predicted sequence accuracy to allow"},
	{Name: OptMinLength, Aliases: []string{"l"}, Kind: params.KindInt, Default: DefaultMinLength,
		Usage: "minimum length sequence to allow"},
	{Name: OptMinSNR, Aliases: []string{"s"}, Kind: params.KindFloat, Default: DefaultMinSNR,
		Usage: "minimum signal-to-noise ratio to allow"},
	{Name: OptDistance, Aliases: []string{"d"}, Kind: params.KindFloat, Default: DefaultDistance,
		Min: params.FloatPtr(MinDistance), Max: params.FloatPtr(MaxDistance),
		Usage: "distance at which to cluster sequences"},
	{Name: OptStep, Aliases: []string{"t"}, Kind: params.KindFloat, Default: DefaultStep,
		Usage: "step size for iterative clustering"},
	{Name: OptNumProcesses, Aliases: []string{"n"}, Kind: params.KindInt, Default: DefaultNumProcesses,
		Min:   params.FloatPtr(0),
		Usage: "number of processors to use"},
	{Name: OptFraction, Aliases: []string{"f"}, Kind: params.KindFloat, Default: DefaultFraction,
		Usage: "fraction of full-length to require of each read"},
	{Name: OptOutputDir, Aliases: []string{"o"}, Kind: params.KindString, Default: DefaultOutputDir,
		Usage: "output folder"},
	{Name: OptMinQV, Aliases: []string{"q"}, Kind: params.KindInt, Default: DefaultMinQV,
		Usage: "minimum QV to allow after sequence masking"},
	{Name: OptMinClusterSize, Aliases: []string{"c"}, Kind: params.KindInt, Default: DefaultMinClusterSize,
		Usage: "minimum cluster size to generate consensus sequences"},
	{Name: OptClusteringMethod, Kind: params.KindEnum, Default: string(MethodAverage),
		Choices: []string{string(MethodNearest), string(MethodAverage), string(MethodFurthest)},
		Usage:   "distance algorithm to use in clustering"},
	{Name: OptPreclusterDiffs, Kind: params.KindInt, Default: DefaultPreclusterDiffs,
		Usage: "maximum number of differences to allow in preclustering"},
	{Name: OptAlignmentReference, Aliases: []string{"A"}, Kind: params.KindString, Default: DefaultAlignmentReference,
		Usage: "reference MSA for aligning query sequences"},
	{Name: OptChimeraReference, Aliases: []string{"C"}, Kind: params.KindString, Default: DefaultChimeraReference,
		Usage: "reference MSA for chimera detection"},
	{Name: OptSubCluster, Kind: params.KindBool, Default: false,
		Usage: "subcluster each OTU to separate individual rDNA alleles"},
	{Name: OptEnableIteration, Kind: params.KindBool, Default: true,
		Usage: "iterative clustering and resequencing steps"},
	{Name: OptEnableConsensus, Kind: params.KindBool, Default: true,
		Usage: "consensus generation (requires " + ConsensusTool + ")"},
	{Name: OptBlasr, Kind: params.KindString, Default: "",
		Usage: "path to the blasr executable"},
	{Name: OptMothur, Kind: params.KindString, Default: DefaultMothur,
		Usage: "path to the mothur executable"},
	{Name: OptDebug, Kind: params.KindBool, Default: false,
		Usage: "turn on DEBUG message logging"},
	{Name: OptTestMode, Kind: params.KindBool, Default: false,
		Usage: "turn on modifications currently under test"},
}

// Specs returns the declared option table. Callers must not modify the
// returned slice.
func Specs() []params.Spec { return specs }
