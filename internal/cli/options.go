// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"primedesign/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Template input
	Sequence string // inline sequence, or "-" for FASTA on stdin

	// Target region (0-based, half-open)
	TargetStart int
	TargetEnd   int

	// Primer constraints
	LengthMin      int
	LengthMax      int
	TmMin          float64
	TmMax          float64
	TmOpt          float64
	GCMin          float64
	GCMax          float64
	MaxSelfDimer   float64
	MaxHairpin     float64
	MaxHeteroDimer float64

	// Reaction conditions (molar specs like "50mM", "250nM")
	NaSpec         string
	MgSpec         string
	PrimerConcSpec string

	// Output
	Output    string
	Multiplex bool
	Header    bool // true unless --no-header

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s - PCR primer design\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s --sequence ACGT... --target-start 100 --target-end 200\n", name)
		fmt.Fprintf(out, "  cat template.fa | %s --sequence - --target-start 100 --target-end 200 --output json\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequence string       Template sequence, or '-' for FASTA on STDIN [*]")
		fmt.Fprintln(out, "      --target-start int      Target region start, 0-based [*]")
		fmt.Fprintln(out, "      --target-end int        Target region end, exclusive [*]")

		fmt.Fprintln(out, "\nPrimer constraints:")
		fmt.Fprintf(out, "      --length-min int        Minimum primer length [%s]\n", def("length-min"))
		fmt.Fprintf(out, "      --length-max int        Maximum primer length [%s]\n", def("length-max"))
		fmt.Fprintf(out, "      --tm-min float          Minimum melting temperature, °C [%s]\n", def("tm-min"))
		fmt.Fprintf(out, "      --tm-max float          Maximum melting temperature, °C [%s]\n", def("tm-max"))
		fmt.Fprintf(out, "      --tm-opt float          Optimal melting temperature, °C [%s]\n", def("tm-opt"))
		fmt.Fprintf(out, "      --gc-min float          Minimum GC content, %% [%s]\n", def("gc-min"))
		fmt.Fprintf(out, "      --gc-max float          Maximum GC content, %% [%s]\n", def("gc-max"))
		fmt.Fprintf(out, "      --max-self-dimer float  Self-dimer acceptance threshold, kcal/mol [%s]\n", def("max-self-dimer"))
		fmt.Fprintf(out, "      --max-hairpin float     Hairpin acceptance threshold, kcal/mol [%s]\n", def("max-hairpin"))
		fmt.Fprintf(out, "      --max-hetero-dimer float  Cross-dimer acceptance threshold, kcal/mol [%s]\n", def("max-hetero-dimer"))

		fmt.Fprintln(out, "\nConditions:")
		fmt.Fprintf(out, "      --na string             Monovalent cation concentration [%s]\n", def("na"))
		fmt.Fprintf(out, "      --mg string             Mg2+ concentration [%s]\n", def("mg"))
		fmt.Fprintf(out, "      --primer-conc string    Total primer concentration [%s]\n", def("primer-conc"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --multiplex             Report multiplex compatibility [%s]\n", def("multiplex"))
		fmt.Fprintf(out, "      --no-header             Suppress header line in text/TSV [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress non-essential warnings")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Sequence, "sequence", "", "template sequence or '-' for FASTA on stdin [*]")
	fs.StringVar(&opt.Sequence, "s", "", "template sequence (shorthand)")
	fs.IntVar(&opt.TargetStart, "target-start", -1, "target region start, 0-based [*]")
	fs.IntVar(&opt.TargetEnd, "target-end", -1, "target region end, exclusive [*]")

	fs.IntVar(&opt.LengthMin, "length-min", 18, "minimum primer length [18]")
	fs.IntVar(&opt.LengthMax, "length-max", 25, "maximum primer length [25]")
	fs.Float64Var(&opt.TmMin, "tm-min", 55.0, "minimum Tm, °C [55]")
	fs.Float64Var(&opt.TmMax, "tm-max", 65.0, "maximum Tm, °C [65]")
	fs.Float64Var(&opt.TmOpt, "tm-opt", 60.0, "optimal Tm, °C [60]")
	fs.Float64Var(&opt.GCMin, "gc-min", 40.0, "minimum GC content, % [40]")
	fs.Float64Var(&opt.GCMax, "gc-max", 60.0, "maximum GC content, % [60]")
	fs.Float64Var(&opt.MaxSelfDimer, "max-self-dimer", -5.0, "self-dimer threshold, kcal/mol [-5]")
	fs.Float64Var(&opt.MaxHairpin, "max-hairpin", -3.0, "hairpin threshold, kcal/mol [-3]")
	fs.Float64Var(&opt.MaxHeteroDimer, "max-hetero-dimer", -5.0, "cross-dimer threshold, kcal/mol [-5]")

	fs.StringVar(&opt.NaSpec, "na", "50mM", "monovalent cation concentration [50mM]")
	fs.StringVar(&opt.MgSpec, "mg", "2mM", "Mg2+ concentration [2mM]")
	fs.StringVar(&opt.PrimerConcSpec, "primer-conc", "1uM", "total primer concentration [1uM]")

	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | json [text]")
	fs.StringVar(&opt.Output, "o", "text", "output format (shorthand)")
	fs.BoolVar(&opt.Multiplex, "multiplex", false, "report multiplex compatibility [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand) [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.Sequence == "" {
		return opt, errors.New("--sequence is required ('-' reads FASTA from stdin)")
	}
	if opt.TargetStart < 0 || opt.TargetEnd < 0 {
		return opt, errors.New("--target-start and --target-end are required")
	}
	if opt.TargetStart >= opt.TargetEnd {
		return opt, errors.New("--target-start must be below --target-end")
	}
	if opt.LengthMin < 2 || opt.LengthMax < opt.LengthMin {
		return opt, errors.New("primer length bounds must satisfy 2 <= length-min <= length-max")
	}
	if opt.TmMin > opt.TmMax {
		return opt, errors.New("--tm-min must not exceed --tm-max")
	}
	if opt.GCMin > opt.GCMax {
		return opt, errors.New("--gc-min must not exceed --gc-max")
	}
	switch opt.Output {
	case "text", "tsv", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// ParseMolar converts a concentration spec like "50mM", "250nM", or a
// bare molar number into mol/L.
func ParseMolar(spec string) (float64, error) {
	s := strings.TrimSpace(strings.ToLower(spec))
	unit := ""
	num := s
	for _, u := range []string{"nm", "um", "mm", "m"} {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	if num == "" {
		return 0, fmt.Errorf("empty concentration %q", spec)
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("bad concentration %q", spec)
	}
	switch unit {
	case "nm":
		return f * 1e-9, nil
	case "um":
		return f * 1e-6, nil
	case "mm":
		return f * 1e-3, nil
	case "m", "":
		return f, nil
	default:
		return 0, fmt.Errorf("unknown unit in %q", spec)
	}
}
