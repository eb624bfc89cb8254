package main

import (
	"log"
	"path/filepath"

	"github.com/alecthomas/kong"
)

type cli struct {
	Dir    string `help:"Directory of the package declaring the kind descriptors." default:"."`
	Output string `help:"File name of the generated accessors, relative to --dir." default:"accessors_gen.go"`
	Check  bool   `help:"Fail instead of writing when the generated file is stale."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("vcellgen"),
		kong.Description("Generate per-tag Value accessor methods from the kind descriptors."),
		kong.UsageOnError(),
	)

	absDir, err := filepath.Abs(args.Dir)
	if err != nil {
		log.Fatal(err)
	}

	info, err := loadPackageInfo(absDir)
	if err != nil {
		log.Fatal(err)
	}

	outPath := filepath.Join(absDir, args.Output)
	if len(info.Kinds) == 0 {
		removed, err := removeGeneratedFile(outPath)
		if err != nil {
			log.Fatal(err)
		}
		if removed {
			log.Printf("vcellgen: removed %s", outPath)
		} else {
			log.Printf("vcellgen: no kinds in %s", absDir)
		}
		return
	}

	src, err := generateAccessors(info)
	if err != nil {
		log.Fatal(err)
	}

	if args.Check {
		stale, err := isStale(outPath, src)
		if err != nil {
			log.Fatal(err)
		}
		if stale {
			log.Fatalf("vcellgen: %s is out of date", outPath)
		}
		return
	}

	changed, err := writeFileIfChanged(outPath, src)
	if err != nil {
		log.Fatal(err)
	}
	if changed {
		log.Printf("vcellgen: wrote %d kind(s) to %s", len(info.Kinds), outPath)
	} else {
		log.Printf("vcellgen: no changes")
	}
}
