package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/boolean-function-benchmarks/interfaces/internal/bench"
	"github.com/boolean-function-benchmarks/interfaces/internal/table"
	"github.com/boolean-function-benchmarks/interfaces/internal/term"
	"github.com/boolean-function-benchmarks/interfaces/parsers"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagKind = flag.String(
	"kind",
	"",
	"benchmark encoding: tt, pla, plu, or auto to read it from the header (default: from the file extension)",
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"read a gzip compressed file (implied by the .gz extension)",
)

var flagTrace = flag.Bool(
	"trace",
	false,
	"log every product term match while expanding the table",
)

var flagSummary = flag.Bool(
	"summary",
	false,
	"print the outputs ordered by the size of their on-set instead of the table",
)

var flagModels = flag.String(
	"models",
	"",
	"verify the decoded table against the rows stored as DIMACS models in this file",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing benchmark file")
	}

	cfg := &config{
		benchmarkFile: flag.Arg(0),
		gzipped:       *flagGzip || parsers.IsGzipped(flag.Arg(0)),
		trace:         *flagTrace,
		summary:       *flagSummary,
		modelsFile:    *flagModels,
		memProfile:    *flagMemProfile,
		cpuProfile:    *flagCPUProfile,
	}

	var err error
	if *flagKind == "" {
		cfg.kind, err = parsers.KindFromPath(cfg.benchmarkFile)
	} else {
		cfg.kind, err = bench.ParseKind(*flagKind)
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

type config struct {
	benchmarkFile string
	kind          bench.Kind
	gzipped       bool
	trace         bool
	summary       bool
	modelsFile    string
	memProfile    bool
	cpuProfile    bool
}

func decodeOptions(cfg *config) []bench.Option {
	if !cfg.trace {
		return nil
	}
	return []bench.Option{
		bench.WithObserver(func(t term.Term, row int) {
			log.Printf("term %s matches row %d", t, row)
		}),
	}
}

func run(cfg *config) error {
	t0 := time.Now()
	tt, err := parsers.LoadBenchmark(cfg.benchmarkFile, cfg.gzipped, cfg.kind, decodeOptions(cfg)...)
	if err != nil {
		return fmt.Errorf("could not load benchmark: %w", err)
	}
	elapsed := time.Since(t0)

	if tt.Model != "" {
		fmt.Printf("c model:      %s\n", tt.Model)
	}
	fmt.Printf("c inputs:     %d %s\n", tt.NumInputs, strings.Join(tt.InputNames, " "))
	fmt.Printf("c outputs:    %d %s\n", tt.NumOutputs, strings.Join(tt.OutputNames, " "))
	fmt.Printf("c rows:       %d\n", tt.Rows())
	fmt.Printf("c compressed: %t\n", tt.Compressed)
	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())

	if cfg.modelsFile != "" {
		if err := verify(tt, cfg.modelsFile); err != nil {
			return err
		}
		fmt.Printf("c reference:  ok\n")
	}

	if cfg.summary {
		if tt.Compressed {
			return fmt.Errorf("on-sets of compressed tables are not available")
		}
		printSummary(tt)
	} else {
		fmt.Print(tt)
	}

	return nil
}

func verify(tt *table.Table, modelsFile string) error {
	if tt.Compressed {
		return fmt.Errorf("compressed tables cannot be verified against models")
	}
	ref, err := parsers.ReadReference(modelsFile, tt.NumInputs, tt.NumOutputs)
	if err != nil {
		return fmt.Errorf("could not read reference: %w", err)
	}
	if !tt.EqualRows(ref) {
		return fmt.Errorf("table does not match the reference in %q", modelsFile)
	}
	return nil
}

func printSummary(tt *table.Table) {
	for _, o := range tt.RankOutputs() {
		name := fmt.Sprintf("#%d", o)
		if len(tt.OutputNames) > 0 {
			name = tt.OutputNames[o]
		}
		fmt.Printf("%s %d\n", name, len(tt.OnSet(o)))
	}
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
