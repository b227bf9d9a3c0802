// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"primedesign-core/design"
	"primedesign-core/fasta"
	"primedesign-core/thermo"
	"primedesign/internal/cli"
	"primedesign/internal/cmdutil"
	"primedesign/internal/output"
	"primedesign/internal/version"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitNoPairs = 1
	ExitUsage   = 2
	ExitWrite   = 3
)

// RunContext parses argv, designs primers, and writes the report to
// stdout. stdin is consumed only when --sequence is '-'.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("primedesign")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		_, _ = cli.ParseArgs(fs, nil)
		fs.Usage()
		return ExitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "primedesign version %s\n", version.Version)
		return ExitOK
	}

	sequence := opts.Sequence
	if sequence == "-" {
		rec, err := fasta.ParseOne(stdin)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "reading stdin: %v\n", err)
			return ExitUsage
		}
		sequence = string(rec.Seq)
	}

	if err := ctx.Err(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	svc := design.NewService(design.WithCalculator(buildCalculator(opts, stderr)))
	res, err := svc.DesignPrimers(sequence, opts.TargetStart, opts.TargetEnd, designParams(opts))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if !opts.Multiplex {
		res.Multiplex = nil
	}

	switch opts.Output {
	case "json":
		err = output.WriteJSON(stdout, res)
	case "tsv":
		err = output.WriteTSV(stdout, res, opts.Header)
	default:
		err = output.WriteText(stdout, res, opts.Header)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}

	if len(res.Pairs) == 0 {
		return ExitNoPairs
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// buildCalculator applies the CLI reaction conditions, falling back to
// defaults on malformed specs.
func buildCalculator(opts cli.Options, stderr io.Writer) *thermo.Calculator {
	salt := thermo.DefaultSalt()
	if naM, err := cli.ParseMolar(opts.NaSpec); err != nil {
		cmdutil.Warnf(stderr, opts.Quiet, "bad --na %q: %v (using 50mM)", opts.NaSpec, err)
	} else {
		salt.NaM = naM
	}
	if mgM, err := cli.ParseMolar(opts.MgSpec); err != nil {
		cmdutil.Warnf(stderr, opts.Quiet, "bad --mg %q: %v (using 2mM)", opts.MgSpec, err)
	} else {
		salt.MgM = mgM
	}

	cond := thermo.DefaultConditions()
	if ctM, err := cli.ParseMolar(opts.PrimerConcSpec); err != nil {
		cmdutil.Warnf(stderr, opts.Quiet, "bad --primer-conc %q: %v (using 1uM)", opts.PrimerConcSpec, err)
	} else {
		cond.PrimerConcM = ctM
	}

	db := thermo.NNDB2024()
	db.Salt = salt
	calc := thermo.NewCalculator(db)
	calc.SetConditions(cond)
	return calc
}

func designParams(opts cli.Options) design.Params {
	return design.Params{
		LengthMin:      opts.LengthMin,
		LengthMax:      opts.LengthMax,
		TmMin:          opts.TmMin,
		TmMax:          opts.TmMax,
		TmOptimal:      opts.TmOpt,
		GCMin:          opts.GCMin,
		GCMax:          opts.GCMax,
		MaxSelfDimer:   opts.MaxSelfDimer,
		MaxHairpin:     opts.MaxHairpin,
		MaxHeteroDimer: opts.MaxHeteroDimer,
	}
}
