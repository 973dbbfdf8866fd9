package main

import (
	"io"
	"log/slog"
	"os"

	"bootdev_starter/internal/greeter"
	"bootdev_starter/internal/harness"
)

func main() {
	os.Exit(run(greeter.HelloWorld, os.Stdout, os.Stderr))
}

func run(g harness.Greeter, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	res := harness.Run(g, stdout)
	if res.Status != harness.Pass {
		logger.Error("greeting check failed", "test", res.Name, "err", res.Err)
	}
	return res.ExitCode()
}
