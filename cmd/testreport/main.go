package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bootdev_starter/internal/config"
	"bootdev_starter/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	fs := flag.NewFlagSet("testreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "", "input file (go test -json output). If empty: read stdin")
	outPath := fs.String("out", "package-results.json", "output json file")
	pkgsPath := fs.String("pkgs", "", "optional packages list file (one package per line), e.g. from `go list ./...`")
	configPath := fs.String("config", "./.etc/config.yaml", "config file")
	strict := fs.Bool("strict", false, "exit 1 if any package failed")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	pkgs, err := report.LoadPackages(*pkgsPath)
	if err != nil {
		fmt.Fprintf(stderr, "load pkgs: %v\n", err)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "create cfg: %v\n", err)
		return 2
	}

	c := report.New(cfg.IgnoredPackages())
	for _, p := range pkgs {
		c.Expect(p)
	}

	in := stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintf(stderr, "open input: %v\n", err)
			return 2
		}
		defer f.Close()
		in = f
	}

	if err := c.Consume(in); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(stderr, "create output: %v\n", err)
		return 2
	}
	defer out.Close()

	if err := report.Write(out, c.Results()); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 2
	}

	logger.Info("test report written", "out", *outPath, "packages", len(c.Results()))
	if *strict && c.Failed() {
		return 1
	}
	return 0
}
