package cmd

import (
	"errors"
	"fmt"

	"overlay/cmd/cli/app"
	"overlay/internal/cli/output"
	"overlay/internal/config"
	"overlay/internal/core"

	"github.com/spf13/cobra"
)

func init() {
	if err := config.RegisterFlags(createCmd.Flags(), config.CreateOptions); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the overlays for deploying a service into a namespace",
	Long: `Create the overlays needed to deploy a service into a namespace.

Supporting services without an overlay in the namespace get one pointing to
their instance in the default namespace. The namespace is created unless an
existing overlay already declares it.

Every flag falls back to an environment variable: SERVICE, CLUSTER_REPO,
TARGET_IMAGE, TOKEN, FLUX, DRY_RUN, BUILT, BRANCH and WORK_DIR. The namespace
defaults to $GITHUB_HEAD_REF lowercased, with characters outside [a-z0-9-]
replaced by '-' and cut to 63 characters, the tag
to the first seven characters of $GITHUB_SHA. Values may also be set in
.overlay.yaml in the working directory. Without --token or TOKEN the token
stored with 'overlay token set' is used.`,
	Example: `  # Commit the overlays of checkout for the current pull request
  overlay create -s checkout -r acme/cluster -i registry/checkout

  # Preview the rendered overlays without committing
  overlay create -s checkout -r acme/cluster -i registry/checkout -n review -t v1 --dry-run --built`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if err := cfg.BindFlags(cmd.Flags(), config.CreateOptions); err != nil {
			return err
		}

		options := cfg.Options()
		if options.Token == "" && !options.DryRun {
			options.Token = storedToken()
		}
		if err := options.Validate(); err != nil {
			return err
		}

		handler, err := app.InjectCreateCommandHandler(options)
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context())
	},
}

// storedToken returns the token saved in the keyring, or an empty string.
func storedToken() string {
	token, err := app.InjectTokenStore().Lookup()
	if err != nil {
		if !errors.Is(err, core.ErrTokenNotStored) {
			output.ProvidePrinter().Warning(fmt.Sprintf("could not read stored token: %v", err))
		}
		return ""
	}
	return token
}
