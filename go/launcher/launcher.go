// Package launcher stages call payloads and registers replicated work
// units with the volunteer compute host, by shelling out to the VCH's own
// stage_file and create_work tools.
package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	pt "github.com/stoilo/stoilo/go/protocols/task"
)

// Launcher invokes the VCH project's staging and work-creation binaries.
// It holds no state between calls beyond its configured paths.
type Launcher struct {
	// ProjectDir is the VCH project root. The VCH tools expect to run with
	// it as their working directory.
	ProjectDir string
	// AppPrefix composes VCH application names as "<AppPrefix>_<flavor>".
	AppPrefix string
	// TemplateVersion selects the templates/<AppPrefix>/<TemplateVersion>
	// in/out template pair of created work units.
	TemplateVersion string
	// StageDir receives staged call-spec files prior to the stage_file
	// hand-off. Files under it are scratch artifacts owned by the VCH
	// once staging succeeds.
	StageDir string
}

// CreateWork stages |callSpec| and creates the VCH work unit named by
// |taskID|. The redundancy options must already be normalized. An error
// carries the composed stdout and stderr of the failed VCH tool, which the
// gateway surfaces to the client verbatim.
func (l *Launcher) CreateWork(ctx context.Context, taskID, flavor string, callSpec []byte, redundancy *pt.RedundancyOptions) error {
	var staged = filepath.Join(l.StageDir, stagedName(taskID))

	if err := os.WriteFile(staged, callSpec, 0644); err != nil {
		return fmt.Errorf("Failed to stage file: %v", err)
	}

	log.WithFields(log.Fields{
		"taskId": taskID,
		"flavor": flavor,
		"staged": staged,
	}).Info("creating VCH work unit")

	if out, err := l.run(ctx, "bin/stage_file", staged); err != nil {
		return fmt.Errorf("Failed to stage file: %v%s", err, out)
	}
	if out, err := l.run(ctx, "bin/create_work", l.createWorkArgs(taskID, flavor, redundancy)...); err != nil {
		return fmt.Errorf("Failed to create VCH work: %v%s", err, out)
	}
	return nil
}

// createWorkArgs composes the create_work argument vector.
func (l *Launcher) createWorkArgs(taskID, flavor string, redundancy *pt.RedundancyOptions) []string {
	return []string{
		"--appname", fmt.Sprintf("%s_%s", l.AppPrefix, flavor),
		"--min_quorum", strconv.FormatInt(redundancy.MinQuorum, 10),
		"--target_nresults", strconv.FormatInt(redundancy.TargetNresults, 10),
		"--max_error_results", strconv.FormatInt(redundancy.MaxErrorResults, 10),
		"--max_total_results", strconv.FormatInt(redundancy.MaxTotalResults, 10),
		"--max_success_results", strconv.FormatInt(redundancy.MaxSuccessResults, 10),
		"--delay_bound", strconv.FormatInt(redundancy.DelayBound, 10),
		"--wu_name", taskID,
		"--wu_template", fmt.Sprintf("templates/%s/%s/in", l.AppPrefix, l.TemplateVersion),
		"--result_template", fmt.Sprintf("templates/%s/%s/out", l.AppPrefix, l.TemplateVersion),
		stagedName(taskID),
	}
}

// run executes a VCH tool with cwd set to the project root, returning its
// captured output formatted for error composition.
func (l *Launcher) run(ctx context.Context, bin string, args ...string) (string, error) {
	var cmd = exec.CommandContext(ctx, bin, args...)
	cmd.Dir = l.ProjectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	var err = cmd.Run()

	var composed string
	if stdout.Len() != 0 {
		composed += "\nStdout: " + stdout.String()
	}
	if stderr.Len() != 0 {
		composed += "\nStderr: " + stderr.String()
	}
	return composed, err
}

func stagedName(taskID string) string {
	return fmt.Sprintf("wu_%s_call_spec", taskID)
}
