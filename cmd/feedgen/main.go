// feedgen writes a JSONL change feed for airops --feed/--follow demos.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
)

func main() {
	var (
		rate        float64
		outPath     string
		toStdout    bool
		durationStr string
		count       int
		seed        int64
		removePct   int
	)

	fs := pflag.NewFlagSet("feedgen", pflag.ExitOnError)
	fs.Float64Var(&rate, "rate", 2.0, "changes per second")
	fs.StringVar(&outPath, "out", "feed.jsonl", "output file (appended)")
	fs.BoolVar(&toStdout, "stdout", false, "write to stdout instead of --out")
	fs.StringVar(&durationStr, "duration", "", "optional run duration (e.g. 30s, 2m); empty runs until interrupted")
	fs.IntVar(&count, "count", 0, "stop after N changes (0 = unlimited)")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	fs.IntVar(&removePct, "remove-pct", 10, "percentage of changes that remove a record")
	_ = fs.Parse(os.Args[1:])

	if rate <= 0 {
		fmt.Fprintln(os.Stderr, "--rate must be positive")
		os.Exit(2)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var deadline time.Time
	if durationStr != "" {
		d, err := time.ParseDuration(durationStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid duration: %v\n", err)
			os.Exit(2)
		}
		deadline = time.Now().Add(d)
	}

	abort := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(abort)
	}()

	var out io.Writer = os.Stdout
	if !toStdout {
		f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
		fmt.Fprintf(os.Stderr, "writing changes -> %s at %.2f/s\n", outPath, rate)
	}

	g := newGenerator(rand.New(rand.NewSource(seed)), removePct)
	w := bufio.NewWriter(out)
	interval := time.Duration(float64(time.Second) / rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; count == 0 || n < count; n++ {
		line, err := g.next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate: %v\n", err)
			os.Exit(1)
		}
		_, _ = w.WriteString(line + "\n")
		_ = w.Flush()

		if !deadline.IsZero() && time.Now().After(deadline) {
			return
		}
		select {
		case <-abort:
			return
		case <-ticker.C:
		}
	}
}
