package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/InfiniteCoder01/ldtk-codegen/internal/assemble"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/config"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/diagnostic"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/gen"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/ldtk"
	"github.com/InfiniteCoder01/ldtk-codegen/internal/watch"
)

// configOverrides holds the flags set on the command line. Nil fields keep
// the configuration file value.
type configOverrides struct {
	output       *string
	pkg          *string
	preserveCase *bool
	workers      *int
	strictEnums  *bool
	emit         *string
}

func (o configOverrides) apply(cfg *config.Config) {
	if o.output != nil {
		cfg.Output = *o.output
	}

	if o.pkg != nil {
		cfg.Package = *o.pkg
	}

	if o.preserveCase != nil {
		cfg.PreserveCase = *o.preserveCase
	}

	if o.workers != nil {
		cfg.Workers = *o.workers
	}

	if o.strictEnums != nil {
		cfg.StrictEnums = *o.strictEnums
	}

	if o.emit != nil {
		cfg.Emit = config.Emit(*o.emit)
	}
}

// loadConfig reads the configuration file, if any, and applies the flag
// overrides on top of it.
func loadConfig(path string, flags configOverrides) (*config.Config, error) {
	cfg := config.Default()

	if path != "" {
		var err error

		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	flags.apply(cfg)

	if cfg.Workers == 0 {
		cfg.Workers = config.Default().Workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// build compiles the project and writes the generated code.
func build(path string, cfg *config.Config, dump bool, stdout io.Writer) error {
	start := time.Now()

	p, err := ldtk.LoadFile(path)
	if err != nil {
		return err
	}

	res, err := assemble.Compile(p, cfg.CompileOptions())
	if err != nil {
		return fmt.Errorf("compiling %s: %w", path, err)
	}

	report(res.Diagnostics)

	if dump {
		cs := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cs.Fdump(stdout, res.World)
	}

	if cfg.Emit == config.EmitNone {
		log.Printf("%s: %d levels ok (%s)", path, len(res.World.Levels), time.Since(start).Round(time.Millisecond))
		return nil
	}

	files, err := gen.NewGenerator(cfg.Generator()).Generate(res.World)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := gen.WriteFiles(files, cfg.Output); err != nil {
		return err
	}

	log.Printf("%s: wrote %d files to %s (%s)", path, len(files), cfg.Output, time.Since(start).Round(time.Millisecond))

	return nil
}

func report(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		log.Printf("%s: %s", d.Severity, d)
	}
}

// watchProject builds once, then again on every change to the project or
// the configuration file, until ctx is done. Build failures are logged and
// do not stop the watch.
func watchProject(ctx context.Context, project string, opts cliOptions, flags configOverrides, stdout io.Writer) error {
	rebuild := func() {
		cfg, err := loadConfig(opts.configPath, flags)
		if err != nil {
			log.Print(err)
			return
		}

		if err := build(project, cfg, opts.dump, stdout); err != nil {
			log.Print(err)
		}
	}

	paths := []string{project}
	if opts.configPath != "" {
		paths = append(paths, opts.configPath)
	}

	w, err := watch.New(watch.DefaultDelay, paths...)
	if err != nil {
		return err
	}
	defer w.Close()

	rebuild()
	log.Printf("watching %s", project)

	return w.Loop(ctx, func(changed string) {
		log.Printf("%s changed", changed)
		rebuild()
	}, func(err error) {
		log.Printf("watch: %v", err)
	})
}

func writeSchema(w io.Writer) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
