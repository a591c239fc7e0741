package validator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ExecRuntime is a PredicateRuntime over the co-deployed eval_predicate
// tool, an interpreter of the submitting client's language. Blobs are
// handed off through scratch files rather than argv, as predicates and
// payloads are arbitrary bytes.
//
// The tool's contract: exit 0 with stdout "true" or "false" is a verdict
// (--check emits nothing), exit 4 is a fault of the user's predicate, and
// anything else is an internal runtime failure.
type ExecRuntime struct {
	// ProjectDir is the VCH project root, the tool's working directory.
	ProjectDir string
	// Binary overrides the tool path. Empty means "bin/eval_predicate",
	// resolved against ProjectDir.
	Binary string
}

// predicateFaultExit is the eval_predicate exit code attributing the
// failure to the user's predicate.
const predicateFaultExit = 4

func (r *ExecRuntime) Check(ctx context.Context, fn []byte) error {
	var _, err = r.invoke(ctx, "--check", fn)
	return err
}

func (r *ExecRuntime) EvalInit(ctx context.Context, fn, payload []byte) (bool, error) {
	var stdout, err = r.invoke(ctx, "--init", fn, payload)
	if err != nil {
		return false, err
	}
	return parseVerdict(stdout)
}

func (r *ExecRuntime) EvalCompare(ctx context.Context, fn, payload1, payload2 []byte) (bool, error) {
	var stdout, err = r.invoke(ctx, "--compare", fn, payload1, payload2)
	if err != nil {
		return false, err
	}
	return parseVerdict(stdout)
}

// invoke writes |blobs| to scratch files and runs the tool over them,
// returning its stdout.
func (r *ExecRuntime) invoke(ctx context.Context, flag string, blobs ...[]byte) (string, error) {
	var dir, err = os.MkdirTemp("", "stoilo-predicate-")
	if err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	var args = []string{flag}
	for i, blob := range blobs {
		var path = filepath.Join(dir, fmt.Sprintf("arg-%d", i))
		if err = os.WriteFile(path, blob, 0600); err != nil {
			return "", fmt.Errorf("staging predicate argument: %w", err)
		}
		args = append(args, path)
	}

	var binary = r.Binary
	if binary == "" {
		binary = "bin/eval_predicate"
	}
	var cmd = exec.CommandContext(ctx, binary, args...)
	cmd.Dir = r.ProjectDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	if stderr.Len() != 0 {
		log.WithFields(log.Fields{
			"tool":   binary,
			"flag":   flag,
			"stderr": stderr.String(),
		}).Info("eval_predicate stderr")
	}

	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == predicateFaultExit {
		return "", fmt.Errorf("%w: %s", ErrPredicateFault,
			strings.TrimSpace(stderr.String()))
	} else if err != nil {
		return "", fmt.Errorf("eval_predicate %s: %v\nStderr: %s",
			flag, err, stderr.String())
	}
	return stdout.String(), nil
}

// parseVerdict decodes the tool's stdout. Anything but "true" or "false"
// is a protocol violation of the runtime, not a fault of the predicate.
func parseVerdict(stdout string) (bool, error) {
	switch strings.TrimSpace(stdout) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("eval_predicate emitted %q, wanted true or false", stdout)
}
