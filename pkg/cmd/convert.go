package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vdibart/wp2md/pkg/migrate"
)

func runConvert(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 && !opts.jsonOutput {
		fmt.Fprintf(out, "\n%s\n\n", banner)
	}
	if len(args) < 2 {
		notice(out, opts, usage)
		return nil
	}

	source, outputDir := args[0], args[1]

	if !isFile(source) {
		notice(out, opts, fmt.Sprintf("The input file (%s) does not exist\n", source))
		return nil
	}
	if !isDir(outputDir) {
		notice(out, opts, fmt.Sprintf("The output directory (%s) does not exist\n", outputDir))
		return nil
	}

	progress := out
	if opts.jsonOutput {
		progress = io.Discard
	}

	result, err := migrate.Run(migrate.Options{
		Source:    source,
		OutputDir: outputDir,
		Out:       progress,
		DryRun:    opts.dryRun,
	})
	if err != nil {
		return reportError(cmd, opts, err)
	}

	if opts.jsonOutput {
		outputJSON(out, map[string]interface{}{
			"success": true,
			"data":    result,
		})
	}
	return nil
}
