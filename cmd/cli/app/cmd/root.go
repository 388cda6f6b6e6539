package cmd

import (
	"errors"
	"fmt"
	"os"

	"overlay/internal/cli/output"
	"overlay/internal/core"
	"overlay/internal/core/domain"

	"github.com/spf13/cobra"
)

const (
	exitError = 1
	exitUsage = 2
)

var rootCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Creates Kustomize overlays for deploying a service into its own namespace",
	Long: `Overlay prepares a cluster manifest repository for deploying one service
into a fresh namespace, typically one per pull request.

For every service in the repository it decides which overlays already exist
and generates the missing ones: a namespace, service stubs pointing back to the
default namespace, ingress host patches and kustomizations. The result is
committed through the GitHub API or, with --dry-run, printed.

Common workflows:
  overlay create -s checkout -r acme/cluster -i registry/checkout
  overlay create --dry-run --built
  overlay token set`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &domain.ConfigError{Reason: err.Error()}
	})
}

func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	output.ProvidePrinter().Error(err.Error())
	var configErr *domain.ConfigError
	if errors.As(err, &configErr) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}
	os.Exit(ExitCode(err))
}

// ExitCode maps an error to the process exit code. Usage errors exit with 2.
func ExitCode(err error) int {
	var configErr *domain.ConfigError
	var unknownService *core.UnknownServiceError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &configErr), errors.As(err, &unknownService):
		return exitUsage
	default:
		return exitError
	}
}
