// Command listdemo runs a script of list operations, for example
//
//	listdemo --values 1,2,3 insert 1 99 remove 1 pop average
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dsa_code/config"
	"dsa_code/heap/linked_list"
	"dsa_code/script"
)

var log = logrus.New()

type flags struct {
	configPath      string
	values          []float64
	logLevel        string
	continueOnError bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "listdemo [flags] OP...",
		Short:         "Run list operations (push, unshift, pop, shift, get, set, insert, remove, average, len, print)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(out, c, args)
		},
	}
	// ops may take negative numbers, so flags stop at the first op
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML config file")
	cmd.Flags().Float64SliceVar(&f.values, "values", nil, "initial values, pushed in order")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (overrides config)")
	cmd.Flags().BoolVar(&f.continueOnError, "continue-on-error", false, "keep going after a failing op")
	return cmd
}

// loadConfig merges the config file, if any, with flags that were set
// explicitly.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	c := config.Default()
	if f.configPath != "" {
		var err error
		if c, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("values") {
		c.Values = f.values
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("continue-on-error") {
		c.ContinueOnError = f.continueOnError
	}
	return c, c.Validate()
}

func run(out io.Writer, c *config.Config, args []string) error {
	log.SetLevel(c.Level())

	ops, err := script.Parse(args)
	if err != nil {
		return err
	}
	r := script.NewRunner(linked_list.New(c.Values...), log)
	r.ContinueOnError = c.ContinueOnError
	log.Debugf("initial list %v", r.List)

	results, runErr := r.Run(ops)
	for _, res := range results {
		fmt.Fprintln(out, res)
	}
	fmt.Fprintf(out, "list: %v len=%d\n", r.List, r.List.Len())
	return runErr
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
