package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Layout  layoutCmd  `cmd:"" help:"Print the cell layout selected for this build."`
	Dump    dumpCmd    `cmd:"" help:"Parse a file of cell literals and print the cells."`
	Compare compareCmd `cmd:"" help:"Print the pairwise equality matrix of a file of cell literals."`
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("vcell"),
		kong.Description("Inspect value cells."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
