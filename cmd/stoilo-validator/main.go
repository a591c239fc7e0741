// stoilo-validator is invoked by the VCH to judge result files, in
// initial mode (one result) or comparative mode (a pair). Its exit code
// is the verdict; see the validator package for the code contract.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/stoilo/stoilo/go/taskstore"
	"github.com/stoilo/stoilo/go/validator"
	mbp "go.gazette.dev/core/mainboilerplate"
)

// Config of a validator invocation. The VCH composes the argument shapes;
// database and project settings arrive through the environment.
var Config = new(struct {
	Database taskstore.Config `group:"Database" namespace:"db" env-namespace:"DB"`

	VCH struct {
		ProjectDir string `long:"project-dir" env:"PROJECT_DIR" required:"true" description:"VCH project root directory"`
	} `group:"VCH" namespace:"vch" env-namespace:"VCH"`

	Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`

	Init    bool `long:"init" description:"Initial validation: <result_id> <file>"`
	Compare bool `long:"compare" description:"Comparative validation: <result_id_1> <file_1> <result_id_2> <file_2>"`

	Positional struct {
		Args []string `positional-arg-name:"ARG"`
	} `positional-args:"yes"`
})

func main() {
	os.Exit(run())
}

func run() int {
	var parser = flags.NewParser(Config, flags.PrintErrors|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		return int(validator.OtherError)
	}
	mbp.InitLog(Config.Log)

	var args, err = parseShape(Config.Init, Config.Compare, Config.Positional.Args)
	if err != nil {
		log.WithField("error", err).Error("invalid validator invocation")
		return int(validator.OtherError)
	}

	store, err := taskstore.Open(Config.Database, 1)
	if err != nil {
		log.WithField("error", err).Error("failed to open task store")
		return int(validator.OtherError)
	}
	defer store.Close()

	return int(validator.Run(context.Background(), args, store,
		&validator.ExecRuntime{ProjectDir: Config.VCH.ProjectDir}))
}

// parseShape maps the mutually-exclusive --init and --compare argument
// shapes into validator Args.
func parseShape(initMode, compareMode bool, positional []string) (validator.Args, error) {
	var args validator.Args

	switch {
	case initMode == compareMode:
		return args, fmt.Errorf("exactly one of --init or --compare is required")

	case initMode:
		if len(positional) != 2 {
			return args, fmt.Errorf("--init expects <result_id> <file>, got %d arguments", len(positional))
		}
		var resultID, err = strconv.ParseInt(positional[0], 10, 64)
		if err != nil {
			return args, fmt.Errorf("parsing result id %q: %w", positional[0], err)
		}
		args = validator.Args{
			Mode:     taskstore.InitMode,
			ResultID: resultID,
			File:     positional[1],
		}

	default:
		if len(positional) != 4 {
			return args, fmt.Errorf("--compare expects <result_id_1> <file_1> <result_id_2> <file_2>, got %d arguments", len(positional))
		}
		var resultID, err = strconv.ParseInt(positional[0], 10, 64)
		if err != nil {
			return args, fmt.Errorf("parsing result id %q: %w", positional[0], err)
		}
		resultID2, err := strconv.ParseInt(positional[2], 10, 64)
		if err != nil {
			return args, fmt.Errorf("parsing result id %q: %w", positional[2], err)
		}
		args = validator.Args{
			Mode:      taskstore.CompareMode,
			ResultID:  resultID,
			File:      positional[1],
			ResultID2: resultID2,
			File2:     positional[3],
		}
	}
	return args, nil
}
