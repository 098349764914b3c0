// Package output provides diagnostics and exit-coded errors for the
// commitstamp programs.
//
// Both programs are usually invoked from a build system, so human output is
// kept to a minimum: nothing is printed on success unless --verbose is set,
// and diagnostics go to stderr. With --json every run ends in exactly one
// JSON object on stdout: a result, an error, or a fallback result that
// also carries its error and code.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout())).
//	    WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"output": path, "written": true})
//	printer.Warn("not a git repository root: %s", repo)
//	printer.Error(err)
//
// Human output is styled with lipgloss; styles are cleared when the writer
// is not a terminal or when --color=never.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: missing path, bad arguments, not a repository root
//	output.ExitSystemError // 2: git query failed, I/O error
//
// Errors built with NewUserError, NewSystemError and NewSystemErrorWithCause
// carry their code through wrapping; GetExitCode recovers it in main.
package output
