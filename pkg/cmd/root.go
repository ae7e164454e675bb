// Package cmd provides the command line interface for wp2md.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags
var Version = "dev"

const banner = "wp2md - WordPress Export to Markdown Conversion Tool"

const usage = `Tool expects two arguments.
Format : wp2md [--json] [--dry-run] <source_file> <output_path>
e.g. wp2md ~/Downloads/blog.xml ~/blog
`

// options holds the flags of a single invocation.
type options struct {
	jsonOutput bool
	dryRun     bool
	// reported is set once an error has been printed.
	reported bool
}

// Execute runs the CLI with args. A non-nil error means the process should
// exit non-zero; it has been printed by then.
func Execute(args []string) error {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	root, opts := newRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil && !opts.reported {
		return reportError(root, opts, err)
	}
	return err
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}

	root := &cobra.Command{
		Use:           "wp2md <source_file> <output_path>",
		Short:         "Convert a WordPress export into Markdown files by year and month",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}
	root.SetVersionTemplate("wp2md version {{.Version}}\n")

	// A bad flag is a usage problem like a missing argument: say what was
	// wrong, show the usage and exit 0.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		notice(cmd.OutOrStdout(), opts, fmt.Sprintf("%s\n%s", err, usage))
		return nil
	})

	root.Flags().BoolVar(&opts.jsonOutput, "json", false, "output results in JSON format")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would be written without writing")

	return root, opts
}

// notice reports a usage problem. These are not failures: the exit status stays 0.
func notice(w io.Writer, opts *options, msg string) {
	if opts.jsonOutput {
		outputJSON(w, map[string]interface{}{
			"success": false,
			"error":   msg,
		})
		return
	}
	fmt.Fprint(w, msg)
}

// reportError prints a fatal error and hands it back for the exit status.
func reportError(cmd *cobra.Command, opts *options, err error) error {
	if opts.jsonOutput {
		outputJSON(cmd.OutOrStdout(), map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
	}
	opts.reported = true
	return err
}

// outputJSON outputs a JSON response
func outputJSON(w io.Writer, data interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
