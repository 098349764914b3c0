package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/commitstamp/internal/git"
	"github.com/gorewood/commitstamp/internal/output"
	"github.com/gorewood/commitstamp/internal/stamp"
)

// runStamp executes one stamping run for either program.
func runStamp(cmd *cobra.Command, job stamp.Job, flags *stampFlags) error {
	cfg, cfgErr := flags.resolveConfig(cmd)

	printer := output.NewPrinter(cmd.OutOrStdout(), flags.json,
		output.ResolveColorMode(cfg.Color, output.IsTTY(cmd.OutOrStdout()))).
		WithStderr(cmd.ErrOrStderr())

	if cfgErr != nil {
		return report(printer, cfgErr)
	}

	runner := stamp.NewRunner(git.NewExec(cfg.Git.Binary, cfg.Git.Timeout))
	result, err := runner.Run(cmd.Context(), job)
	if errors.Is(err, stamp.ErrNotRepoRoot) {
		return reportFallback(printer, job, result, err)
	}
	if err != nil {
		return report(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(resultData(result))
	}
	if flags.verbose {
		printHumanResult(printer, result)
	}
	return nil
}

// report emits err as JSON in JSON mode and returns it. Human-readable
// errors are rendered by fang on the way out.
func report(printer *output.Printer, err error) error {
	if printer.IsJSON() {
		printer.Error(err)
	}
	return err
}

// reportFallback explains a run whose output got the fallback values.
// JSON mode emits the result object together with the error and its code.
func reportFallback(printer *output.Printer, job stamp.Job, result stamp.Result, err error) error {
	if printer.IsJSON() {
		data := resultData(result)
		data["error"] = err.Error()
		data["code"] = output.GetExitCode(err)
		if jsonErr := printer.WriteJSON(data); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	printer.Warn("not a git repository root: %s; wrote %q for hash and date to %s",
		job.Repo, stamp.NotRepository, job.Output)
	printer.Stderr("Pass the directory printed by `git rev-parse --show-toplevel` as repo_path.\n")
	return err
}

// resultData converts a result into the JSON success object.
func resultData(result stamp.Result) map[string]any {
	return map[string]any{
		"mode":     result.Mode.String(),
		"repo":     result.Repo,
		"output":   result.Output,
		"hash":     result.Hash,
		"date":     result.Date,
		"written":  result.Written,
		"fallback": result.Fallback,
	}
}

// printHumanResult outputs the --verbose summary.
func printHumanResult(printer *output.Printer, result stamp.Result) {
	printer.Section("Commit stamp")
	printer.KeyValue("Output", result.Output)
	printer.KeyValue("Hash", result.Hash)
	printer.KeyValue("Date", result.Date)
	printer.KeyValue("Written", formatWritten(result))
}

func formatWritten(result stamp.Result) string {
	if !result.Written {
		return "no (already up to date)"
	}
	return "yes"
}
