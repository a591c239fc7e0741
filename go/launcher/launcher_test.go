package launcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bradleyjkemp/cupaloy"
	pt "github.com/stoilo/stoilo/go/protocols/task"
	"github.com/stretchr/testify/require"
)

const taskID = "0123456789abcdef0123456789abcdef"

// testLauncher builds a Launcher over a scratch VCH project whose
// bin/stage_file and bin/create_work are the given shell scripts.
func testLauncher(t *testing.T, stageFile, createWork string) *Launcher {
	var project = t.TempDir()
	var stage = filepath.Join(project, "stoilo_stage_tmp")
	require.NoError(t, os.Mkdir(stage, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(project, "bin"), 0755))

	writeScript(t, filepath.Join(project, "bin", "stage_file"), stageFile)
	writeScript(t, filepath.Join(project, "bin", "create_work"), createWork)

	return &Launcher{
		ProjectDir:      project,
		AppPrefix:       "stoilo",
		TemplateVersion: "2.0",
		StageDir:        stage,
	}
}

func writeScript(t *testing.T, path, body string) {
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
}

func TestToolInvocations(t *testing.T) {
	// Both tools append their argument vectors to args.txt, relative to the
	// project root they're invoked from.
	var record = `printf '%s\n' "$@" >> args.txt`
	var l = testLauncher(t, record, record)

	var err = l.CreateWork(context.Background(),
		taskID, "ab12", []byte("pickled call"), pt.TrivialOptions())
	require.NoError(t, err)

	// The staged file holds the call spec bytes, bit-exact.
	var staged, readErr = os.ReadFile(filepath.Join(l.StageDir, "wu_"+taskID+"_call_spec"))
	require.NoError(t, readErr)
	require.Equal(t, []byte("pickled call"), staged)

	args, readErr := os.ReadFile(filepath.Join(l.ProjectDir, "args.txt"))
	require.NoError(t, readErr)

	cupaloy.SnapshotT(t, strings.ReplaceAll(string(args), l.StageDir, "<stage>"))
}

func TestStageFailureComposesOutput(t *testing.T) {
	var l = testLauncher(t,
		`echo "no such volume"; echo "cannot stage" >&2; exit 1`,
		`exit 0`)

	var err = l.CreateWork(context.Background(),
		taskID, "ab12", []byte("x"), pt.TrivialOptions())
	require.EqualError(t, err,
		"Failed to stage file: exit status 1\nStdout: no such volume\n\nStderr: cannot stage\n")
}

func TestCreateWorkFailureComposesOutput(t *testing.T) {
	var l = testLauncher(t,
		`exit 0`,
		`echo "boom-err" >&2; exit 3`)

	var err = l.CreateWork(context.Background(),
		taskID, "ab12", []byte("x"), pt.TrivialOptions())
	require.EqualError(t, err,
		"Failed to create VCH work: exit status 3\nStderr: boom-err\n")
}

func TestUnwritableStageDir(t *testing.T) {
	var l = testLauncher(t, `exit 0`, `exit 0`)
	l.StageDir = filepath.Join(l.ProjectDir, "does", "not", "exist")

	var err = l.CreateWork(context.Background(),
		taskID, "ab12", []byte("x"), pt.TrivialOptions())
	require.ErrorContains(t, err, "Failed to stage file:")
}

func TestContextCancellation(t *testing.T) {
	var l = testLauncher(t, `sleep 30`, `exit 0`)

	var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var start = time.Now()
	var err = l.CreateWork(ctx, taskID, "ab12", []byte("x"), pt.TrivialOptions())
	require.Error(t, err)
	require.Less(t, time.Since(start), 10*time.Second)
}
