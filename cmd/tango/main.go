// Interactive tango tree driver.
//
// The first token on stdin is the tree size (a positive integer).
// After that:
//
//	1 <key>  - search the key in the tango tree
//	2        - show the current tango configuration
//
// Example:
//
//	15
//	1 4
//	2
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/benz9527/xtango/lib/infra"
	"github.com/benz9527/xtango/lib/tree"
	"github.com/benz9527/xtango/observability"
	"github.com/benz9527/xtango/xlog"
)

type shellOptions struct {
	logLevel    string
	metrics     string
	showSplices bool
}

func newTangoCommand() *cobra.Command {
	opts := &shellOptions{}
	cmd := &cobra.Command{
		Use:           "tango",
		Short:         "Interactive tango tree shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.metrics, "metrics", "", "metrics exporter (console, prometheus)")
	cmd.Flags().BoolVar(&opts.showSplices, "show-splices", false, "print the configuration after every splice")
	return cmd
}

func startMetrics(ctx context.Context, mode string) (func(context.Context) error, error) {
	var (
		stop func(context.Context) error
		err  error
	)
	switch mode {
	case "":
		return nil, nil
	case "console":
		stop, err = observability.NewConsoleMetricsExporter(3*time.Second, time.Second)
	case "prometheus":
		stop, err = observability.NewPrometheusMetricsExporter()
	default:
		return nil, infra.NewErrorStack("unknown metrics exporter <" + mode + ">")
	}
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "unable to start metrics exporter")
	}
	observability.InitTreeStats(ctx, "shell")
	return stop, nil
}

func runShell(ctx context.Context, opts *shellOptions) error {
	logger := xlog.NewXLogger(xlog.WithXLoggerLevel(opts.logLevel)).Named("TangoShell")
	defer func() { _ = logger.Sync() }()

	stop, err := startMetrics(ctx, opts.metrics)
	if err != nil {
		logger.ErrorStack(err, "metrics bootstrap failed")
		return err
	}
	if stop != nil {
		defer func() { _ = stop(context.Background()) }()
	}

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 64<<10), 64<<10)
	in.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !in.Scan() {
			return "", false
		}
		return in.Text(), true
	}

	token, ok := next()
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		err = infra.NewErrorStack("tree size is not an integer: " + token)
		logger.ErrorStack(err, "rejected input")
		return err
	}
	root, err := tree.Build(n)
	if err != nil {
		err = infra.WrapErrorStack(err)
		logger.ErrorStack(err, "rejected input", zap.Int("n", n))
		return err
	}
	logger.Info("tango tree built", zap.Int("n", n))

	var onSplice []func(*tree.Node)
	if opts.showSplices {
		onSplice = append(onSplice, func(r *tree.Node) {
			fmt.Print(tree.ShowTango(r))
		})
	}

	for {
		op, ok := next()
		if !ok {
			return nil
		}
		switch op {
		case "1":
			token, ok := next()
			if !ok {
				return nil
			}
			key, err := strconv.Atoi(token)
			if err != nil {
				fmt.Println("Invalid operation")
				continue
			}
			var splices int
			root, splices, err = tree.SearchTango(root, key, onSplice...)
			observability.ObserveTangoSearch(ctx, splices)
			if errors.Is(err, tree.ErrKeyNotFound) {
				logger.Warn("key outside the universe", zap.Int("key", key))
				continue
			}
			logger.Debug("search done", zap.Int("key", key), zap.Int("splices", splices))
		case "2":
			fmt.Print(tree.ShowTango(root))
		default:
			fmt.Println("Invalid operation")
		}
	}
}

func main() {
	if err := newTangoCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
