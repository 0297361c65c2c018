package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"github.com/carson-networks/pocket-ledger/api"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

// Commands lists every command of the ledger binary.
var Commands = []subcommands.Command{
	&serveCmd{},
	&seedCmd{},
	&resetCmd{},
	&exportCmd{},
}

type configFlag struct {
	path string
}

func (c *configFlag) register(f *flag.FlagSet) {
	f.StringVar(&c.path, "config", "", "Path to a YAML config file. Environment variables with the LEDGER_ prefix override it.")
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

type serveCmd struct {
	configFlag
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the HTTP API" }
func (*serveCmd) Usage() string {
	return `ledger serve [-config <file>]

  Opens the ledger, seeds the default categories into an empty database and
  serves the HTTP API until interrupted.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, c.path)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if created, err := a.svc.Seed.SeedDefaultCategories(ctx); err != nil {
		a.logger.WithError(err).Error("Seed.DefaultCategories.Error")
		return subcommands.ExitFailure
	} else if created > 0 {
		a.logger.WithField("created", created).Info("Seed.DefaultCategories.Complete")
	}

	rest := api.Rest{
		Logger:   a.logger,
		Config:   a.cfg.Server,
		Service:  a.svc,
		Cache:    a.cache,
		Database: a.store,
	}
	if err := rest.Serve(ctx); err != nil {
		a.logger.WithError(err).Error("HttpServer.Serve.Error")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type seedCmd struct {
	configFlag
	sample bool
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "create default categories, optionally with sample data" }
func (*seedCmd) Usage() string {
	return `ledger seed [-config <file>] [-sample]

  Creates the default categories when none exist. With -sample, also creates
  a Main Account with a few sample transactions when there are no accounts.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.sample, "sample", false, "Also create a sample account and transactions.")
}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, c.path)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if c.sample {
		seeded, err := a.svc.Seed.SeedSampleData(ctx, time.Now())
		if err != nil {
			return fail(err)
		}
		if !seeded {
			fmt.Println("accounts already exist, sample data skipped")
			return subcommands.ExitSuccess
		}
		fmt.Println("sample data created")
		return subcommands.ExitSuccess
	}

	created, err := a.svc.Seed.SeedDefaultCategories(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("%d categories created\n", created)
	return subcommands.ExitSuccess
}

type resetCmd struct {
	configFlag
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every account, category and transaction" }
func (*resetCmd) Usage() string {
	return `ledger reset -yes [-config <file>]

  Drops all ledger data and recreates empty tables. Requires -yes.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.yes, "yes", false, "Confirm that all data should be deleted.")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "refusing to reset without -yes")
		f.Usage()
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx, c.path)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := a.svc.Seed.Reset(ctx); err != nil {
		return fail(err)
	}
	fmt.Println("ledger reset")
	return subcommands.ExitSuccess
}

type exportCmd struct {
	configFlag
	start  string
	end    string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write transactions to a CSV file" }
func (*exportCmd) Usage() string {
	return `ledger export [-config <file>] [-s <start>] [-e <end>] [-o <file>]

  Writes every transaction in the optional inclusive date range, newest
  first. The file is named after the current time unless -o is given; use
  -o - for standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.start, "s", "", "Inclusive start date, YYYY-MM-DD.")
	f.StringVar(&c.end, "e", "", "Inclusive end date, YYYY-MM-DD.")
	f.StringVar(&c.output, "o", "", "Output file, - for standard output.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, c.path)
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	out := os.Stdout
	name := c.output
	if name != "-" {
		if name == "" {
			name = service.ExportFileName(time.Now())
		}
		file, err := os.Create(name)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		out = file
	}

	rows, err := a.svc.Export.WriteCSV(ctx, out, service.ExportFilter{Start: c.start, End: c.end})
	if err != nil {
		return fail(err)
	}
	if out != os.Stdout {
		fmt.Printf("%d transactions written to %s\n", rows, name)
	}
	return subcommands.ExitSuccess
}
