// Interactive multi-tree red-black shell.
//
//	1 <id> <val>        - Insert(t_id, val)
//	2 <id> <val>        - Contains(t_id, val)
//	3 <id> <val>        - Remove(t_id, val)
//	4 <id1> <key> <id2> - Join(t_id1, Node(key), t_id2)
//	5 <id> <key>        - Split(t_id, key)
//	6 <id>              - Print(t_id)
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/benz9527/xtango/lib/tree"
	"github.com/benz9527/xtango/xlog"
)

func newRBTreeCommand() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "rbtree",
		Short:         "Interactive red-black tree shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := xlog.NewXLogger(xlog.WithXLoggerLevel(logLevel)).Named("RBTreeShell")
			defer func() { _ = logger.Sync() }()
			return runShell(logger)
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func runShell(logger xlog.XLogger) error {
	trees := make(map[int]*tree.Node)

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 64<<10), 64<<10)
	in.Split(bufio.ScanWords)
	nextInt := func() (int, bool) {
		if !in.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(in.Text())
		if err != nil {
			logger.Warn("rejected token", zap.String("token", in.Text()))
			return 0, false
		}
		return v, true
	}

	for in.Scan() {
		switch op := in.Text(); op {
		case "1":
			id, ok1 := nextInt()
			val, ok2 := nextInt()
			if !ok1 || !ok2 {
				return nil
			}
			t, ok := trees[id]
			if !ok {
				t = tree.DummyNode()
			}
			trees[id] = tree.Insert(t, val)
		case "2":
			id, ok1 := nextInt()
			val, ok2 := nextInt()
			if !ok1 || !ok2 {
				return nil
			}
			t, ok := trees[id]
			if !ok {
				t = tree.DummyNode()
			}
			fmt.Println(lo.Ternary(tree.Contains(t, val), "True", "False"))
		case "3":
			id, ok1 := nextInt()
			val, ok2 := nextInt()
			if !ok1 || !ok2 {
				return nil
			}
			if t, ok := trees[id]; ok {
				trees[id] = tree.Remove(t, val)
			} else {
				fmt.Println("Invalid ID")
			}
		case "4":
			id1, ok1 := nextInt()
			val, ok2 := nextInt()
			id2, ok3 := nextInt()
			if !ok1 || !ok2 || !ok3 {
				return nil
			}
			t1, ok := trees[id1]
			if !ok {
				t1 = tree.DummyNode()
			}
			t2, ok := trees[id2]
			if !ok {
				t2 = tree.DummyNode()
			}
			fmt.Print(tree.Show(tree.Join(t1, tree.NewNode(val), t2)))
		case "5":
			id, ok1 := nextInt()
			key, ok2 := nextInt()
			if !ok1 || !ok2 {
				return nil
			}
			t, ok := trees[id]
			if !ok {
				fmt.Println("Invalid ID")
				continue
			}
			l, x, r, err := tree.Split(t, key)
			if err != nil {
				logger.Warn("split key not found", zap.Int("id", id), zap.Int("key", key))
				continue
			}
			fmt.Println("L:")
			fmt.Print(tree.Show(l))
			fmt.Println("x:")
			fmt.Print(tree.Show(x))
			fmt.Println("R:")
			fmt.Print(tree.Show(r))
		case "6":
			id, ok := nextInt()
			if !ok {
				return nil
			}
			if t, found := trees[id]; found {
				fmt.Print(tree.Show(t))
			} else {
				fmt.Println("Invalid ID")
			}
		default:
			fmt.Println("Invalid Operation")
		}
	}
	return nil
}

func main() {
	if err := newRBTreeCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
