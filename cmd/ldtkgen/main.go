// Package main provides the CLI entrypoint for ldtkgen.
//
// ldtkgen compiles an LDtk project into a typed world:
//   - Resolves field types, enums, tilesets and entity references
//   - Reports problems with their location in the project
//   - Generates Go source that rebuilds the world through the model package
//
// Usage:
//
//	ldtkgen [flags] project.ldtk
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ldtkgen: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp), errors.Is(err, context.Canceled):
	default:
		log.Print(err)
		os.Exit(1)
	}
}

// cliOptions holds the flags that are not part of the configuration file.
type cliOptions struct {
	configPath string
	watch      bool
	dump       bool
	schema     bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ldtkgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts         cliOptions
		output       string
		pkg          string
		preserveCase bool
		workers      int
		strictEnums  bool
		emit         string
	)

	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&output, "o", "", "output directory for generated code")
	fs.StringVar(&pkg, "package", "", "package name of the generated code")
	fs.BoolVar(&preserveCase, "preserve-case", false, "keep LDtk identifiers as written")
	fs.IntVar(&workers, "workers", 0, "levels compiled concurrently (0 uses every CPU)")
	fs.BoolVar(&strictEnums, "strict-enums", false, "reject enum values missing from their enum")
	fs.StringVar(&emit, "emit", "", `"go" to write Go source, "none" to only check the project`)
	fs.BoolVar(&opts.watch, "watch", false, "recompile whenever the project or configuration changes")
	fs.BoolVar(&opts.dump, "dump", false, "print the compiled world")
	fs.BoolVar(&opts.schema, "config-schema", false, "print the JSON Schema of the configuration file and exit")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: ldtkgen [flags] project.ldtk")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.schema {
		return writeSchema(stdout)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one project file")
	}

	project := fs.Arg(0)

	// Flags given explicitly take precedence over the configuration file.
	var flags configOverrides

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			flags.output = &output
		case "package":
			flags.pkg = &pkg
		case "preserve-case":
			flags.preserveCase = &preserveCase
		case "workers":
			flags.workers = &workers
		case "strict-enums":
			flags.strictEnums = &strictEnums
		case "emit":
			flags.emit = &emit
		}
	})

	cfg, err := loadConfig(opts.configPath, flags)
	if err != nil {
		return err
	}

	if !opts.watch {
		return build(project, cfg, opts.dump, stdout)
	}

	return watchProject(ctx, project, opts, flags, stdout)
}
