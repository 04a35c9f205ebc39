package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/tictactician/tictactician/cmd/internal/analyze"
	"github.com/tictactician/tictactician/cmd/internal/play"
	"github.com/tictactician/tictactician/cmd/internal/selfplay"
	"github.com/tictactician/tictactician/cmd/internal/tei"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&tei.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
