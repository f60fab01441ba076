// internal/pipeline/runner.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	log "git.sr.ht/~spc/go-log"
)

// Runner is the minimal capability needed to execute a stage.
// The real runner shells out; tests inject fakes.
type Runner interface {
	Run(ctx context.Context, dir string, st Stage) error
}

// ExecRunner launches each stage as a subprocess in the run directory.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir string, st Stage) error {
	cmd := exec.CommandContext(ctx, st.Tool, st.Args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("stage %s (%s): %w", st.Name, st.Tool, err)
	}
	return nil
}

// Run executes the planned stages sequentially inside cfgOutputDir,
// creating it first. The first stage failure (or context cancellation)
// stops the run.
func Run(ctx context.Context, outputDir string, stages []Stage, r Runner) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debugf("running stage %s: %s %v", st.Name, st.Tool, st.Args)
		if err := r.Run(ctx, outputDir, st); err != nil {
			return err
		}
		log.Infof("stage %s complete", st.Name)
	}
	return nil
}
