// internal/pipeline/plan_test.go
package pipeline

import (
	"fmt"
	"strings"
	"testing"

	"rnapipe/internal/config"
)

func baseConfig() config.Config {
	return config.Config{
		InputFile:          "/data/reads.fastq",
		MinLength:          500,
		MinQV:              15,
		Distance:           0.03,
		Step:               0.015,
		ClusteringMethod:   config.MethodAverage,
		PreclusterDiffs:    4,
		MinClusterSize:     3,
		AlignmentReference: "/refs/silva.both.align",
		ChimeraReference:   "/refs/silva.gold.align",
		NumProcesses:       2,
		OutputDir:          "run",
		EnableIteration:    true,
		EnableConsensus:    true,
		Mothur:             "mothur",
	}
}

func stageNames(stages []Stage) []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return names
}

func hasStage(stages []Stage, name string) bool {
	for _, st := range stages {
		if st.Name == name {
			return true
		}
	}
	return false
}

func TestPlanCoreStages(t *testing.T) {
	stages := Plan(baseConfig())
	for _, want := range []string{"trim", "align", "screen", "chimera", "precluster", "distance", "cluster"} {
		if !hasStage(stages, want) {
			t.Errorf("missing stage %s in %v", want, stageNames(stages))
		}
	}
}

func TestPlanConsensusFollowsToggle(t *testing.T) {
	cfg := baseConfig()
	if !hasStage(Plan(cfg), "consensus") {
		t.Errorf("consensus stage missing while enabled")
	}
	cfg.EnableConsensus = false
	if hasStage(Plan(cfg), "consensus") {
		t.Errorf("consensus stage planned while disabled")
	}
}

func TestPlanIterationAndSubcluster(t *testing.T) {
	cfg := baseConfig()
	cfg.EnableIteration = false
	cfg.SubCluster = false
	stages := Plan(cfg)
	if hasStage(stages, "recluster") || hasStage(stages, "subcluster") {
		t.Errorf("unexpected optional stages: %v", stageNames(stages))
	}

	cfg.EnableIteration = true
	cfg.SubCluster = true
	stages = Plan(cfg)
	if !hasStage(stages, "recluster") || !hasStage(stages, "subcluster") {
		t.Errorf("optional stages missing: %v", stageNames(stages))
	}
}

func TestPlanResequenceNeedsRawData(t *testing.T) {
	cfg := baseConfig()
	if hasStage(Plan(cfg), "resequence") {
		t.Errorf("resequence planned without raw data")
	}
	cfg.RawData = "/data/movie.bas.h5"
	cfg.Blasr = "/opt/blasr"
	stages := Plan(cfg)
	if !hasStage(stages, "resequence") {
		t.Fatalf("resequence missing: %v", stageNames(stages))
	}
	for _, st := range stages {
		if st.Name == "resequence" && st.Tool != "/opt/blasr" {
			t.Errorf("blasr override not used: %s", st.Tool)
		}
	}
}

func TestPlanParameterWiring(t *testing.T) {
	cfg := baseConfig()
	stages := Plan(cfg)
	joined := ""
	for _, st := range stages {
		joined += st.Tool + " " + strings.Join(st.Args, " ") + "\n"
	}
	for _, want := range []string{
		"reference=/refs/silva.both.align",
		"reference=/refs/silva.gold.align",
		"method=average",
		"diffs=4",
		"qaverage=15",
		"minlength=500",
		"processors=2",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("plan missing %q:\n%s", want, joined)
		}
	}
}

func TestPlanClusterCutoffCoversIteration(t *testing.T) {
	cfg := baseConfig()
	stages := Plan(cfg)
	var distArgs string
	for _, st := range stages {
		if st.Name == "distance" {
			distArgs = strings.Join(st.Args, " ")
		}
	}
	want := fmt.Sprintf("cutoff=%g", cfg.Distance+cfg.Step)
	if !strings.Contains(distArgs, want) {
		t.Errorf("distance cutoff should cover distance+step (%s): %s", want, distArgs)
	}

	cfg.EnableIteration = false
	for _, st := range Plan(cfg) {
		if st.Name == "distance" && !strings.Contains(strings.Join(st.Args, " "), "cutoff=0.03") {
			t.Errorf("distance cutoff without iteration: %v", st.Args)
		}
	}
}
