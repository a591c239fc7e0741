// stoilo-assimilator is invoked by the VCH once per work unit, to record
// its canonical outcome in the task store. A non-zero exit tells the VCH
// that nothing was recorded and the invocation should be repeated.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/stoilo/stoilo/go/assimilator"
	"github.com/stoilo/stoilo/go/taskstore"
	mbp "go.gazette.dev/core/mainboilerplate"
)

// Config of an assimilator invocation. The VCH composes the argument
// shapes; database settings arrive through the environment.
var Config = new(struct {
	Database taskstore.Config `group:"Database" namespace:"db" env-namespace:"DB"`
	Log      mbp.LogConfig    `group:"Logging" namespace:"log" env-namespace:"LOG"`

	VCHError bool `long:"error" description:"Error shape: <code> <wu_name> <wu_id> <runtime>"`

	Positional struct {
		Args []string `positional-arg-name:"ARG"`
	} `positional-args:"yes"`
})

func main() {
	var parser = flags.NewParser(Config, flags.PrintErrors|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
	mbp.InitLog(Config.Log)

	var args, err = parseShape(Config.VCHError, Config.Positional.Args)
	if err != nil {
		log.WithField("error", err).Error("invalid assimilator invocation")
		os.Exit(1)
	}

	store, err := taskstore.Open(Config.Database, 1)
	if err != nil {
		log.WithField("error", err).Error("failed to open task store")
		os.Exit(1)
	}

	err = assimilator.Run(context.Background(), args, store)
	store.Close()

	if err != nil {
		log.WithField("error", err).Error("assimilation failed")
		os.Exit(1)
	}
}

// parseShape maps the success and error argument shapes into assimilator
// Args. The success shape is <wu_id> <result_file>; the error shape is
// --error <code> <wu_name> <wu_id> <runtime>.
func parseShape(vchError bool, positional []string) (assimilator.Args, error) {
	var args assimilator.Args

	if !vchError {
		if len(positional) != 2 {
			return args, fmt.Errorf("expected <wu_id> <result_file>, got %d arguments", len(positional))
		}
		var wuID, err = strconv.ParseInt(positional[0], 10, 64)
		if err != nil {
			return args, fmt.Errorf("parsing workunit id %q: %w", positional[0], err)
		}
		args = assimilator.Args{
			WorkunitID: wuID,
			ResultFile: positional[1],
		}
		return args, nil
	}

	if len(positional) != 4 {
		return args, fmt.Errorf("--error expects <code> <wu_name> <wu_id> <runtime>, got %d arguments", len(positional))
	}
	var code, err = strconv.ParseInt(positional[0], 10, 64)
	if err != nil {
		return args, fmt.Errorf("parsing error code %q: %w", positional[0], err)
	}
	wuID, err := strconv.ParseInt(positional[2], 10, 64)
	if err != nil {
		return args, fmt.Errorf("parsing workunit id %q: %w", positional[2], err)
	}
	runtime, err := strconv.ParseFloat(positional[3], 64)
	if err != nil {
		return args, fmt.Errorf("parsing runtime %q: %w", positional[3], err)
	}
	args = assimilator.Args{
		WorkunitID:   wuID,
		VCHError:     true,
		ErrorCode:    code,
		WorkunitName: positional[1],
		Runtime:      runtime,
	}
	return args, nil
}
