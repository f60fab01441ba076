// internal/pipeline/plan.go
package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"rnapipe/internal/config"
)

// Stage is one external command in the analysis sequence. Args are the
// exact argv passed to Tool; mothur stages carry a single "#batch"
// argument in mothur's inline-batch syntax.
type Stage struct {
	Name string
	Tool string
	Args []string
}

// Plan derives the ordered stage list from a reconciled configuration.
// It is pure: no filesystem access, no subprocesses.
func Plan(cfg config.Config) []Stage {
	base := strings.TrimSuffix(filepath.Base(cfg.InputFile), filepath.Ext(cfg.InputFile))

	batch := func(name, format string, a ...any) Stage {
		return Stage{Name: name, Tool: cfg.Mothur, Args: []string{"#" + fmt.Sprintf(format, a...)}}
	}

	// The clustering cutoff must cover the final iteration, otherwise
	// mothur truncates the distance matrix below it.
	cutoff := cfg.Distance
	if cfg.EnableIteration {
		cutoff += cfg.Step
	}

	stages := []Stage{
		batch("trim", "trim.seqs(fasta=%s, qaverage=%d, minlength=%d, processors=%d)",
			cfg.InputFile, cfg.MinQV, cfg.MinLength, cfg.NumProcesses),
		batch("align", "align.seqs(fasta=%s.trim.fasta, reference=%s, flip=t, processors=%d)",
			base, cfg.AlignmentReference, cfg.NumProcesses),
		batch("screen", "screen.seqs(fasta=%s.trim.align, minlength=%d, processors=%d)",
			base, cfg.MinLength, cfg.NumProcesses),
		batch("chimera", "chimera.uchime(fasta=%s.good.align, reference=%s, processors=%d)",
			base, cfg.ChimeraReference, cfg.NumProcesses),
		batch("precluster", "pre.cluster(fasta=%s.pick.align, diffs=%d)",
			base, cfg.PreclusterDiffs),
		batch("distance", "dist.seqs(fasta=%s.precluster.align, cutoff=%g, processors=%d)",
			base, cutoff, cfg.NumProcesses),
		batch("cluster", "cluster(method=%s, cutoff=%g)",
			cfg.ClusteringMethod, cfg.Distance),
	}

	if cfg.EnableIteration {
		if cfg.RawData != "" {
			stages = append(stages, Stage{
				Name: "resequence",
				Tool: blasrTool(cfg),
				Args: []string{cfg.RawData, base + ".cluster.fasta",
					"--bestn", "1", "--nproc", fmt.Sprint(cfg.NumProcesses)},
			})
		}
		stages = append(stages, batch("recluster", "cluster(method=%s, cutoff=%g)",
			cfg.ClusteringMethod, cfg.Distance+cfg.Step))
	}

	if cfg.EnableConsensus {
		stages = append(stages, Stage{
			Name: "consensus",
			Tool: config.ConsensusTool,
			Args: []string{base + ".an.list",
				"--min-cluster-size", fmt.Sprint(cfg.MinClusterSize),
				"--nproc", fmt.Sprint(cfg.NumProcesses)},
		})
	}

	if cfg.SubCluster {
		stages = append(stages, batch("subcluster", "cluster.split(fasta=%s.precluster.align, method=%s, cutoff=%g, processors=%d)",
			base, cfg.ClusteringMethod, cfg.Distance, cfg.NumProcesses))
	}

	return stages
}

func blasrTool(cfg config.Config) string {
	if cfg.Blasr != "" {
		return cfg.Blasr
	}
	return "blasr"
}
