package main

import (
	"github.com/jessevdk/go-flags"
	mbp "go.gazette.dev/core/mainboilerplate"
)

const iniFilename = "stoilo.ini"

func main() {
	var parser = flags.NewParser(nil, flags.HelpFlag|flags.PassDoubleDash)

	_, _ = parser.AddCommand("submit", "Submit a task to a stoilo gateway", `
Submit a compute call to a stoilo gateway. The call spec and validation
predicates are opaque blobs, read from files; the gateway hands them to
the volunteer compute host unexamined.
`, &cmdSubmit{})

	_, _ = parser.AddCommand("poll", "Poll a submitted task", `
Poll a previously submitted task. By default the task's current state is
printed and the command returns; with --await, polling continues until
the task finishes or the polling schedule is exhausted.
`, &cmdPoll{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}
