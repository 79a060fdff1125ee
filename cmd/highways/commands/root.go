package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"highways/internal/app"
	"highways/internal/console"
	"highways/internal/domain"
)

var (
	cfgFile string
	appCtx  *app.Wire
)

// Execute runs the CLI against the process arguments.
func Execute() error {
	return run(newRoot(os.Stdin))
}

// run executes root and then releases the wire built by its pre-run, also
// when the command failed.
func run(root *cobra.Command) error {
	defer closeApp()
	return root.Execute()
}

func closeApp() {
	if appCtx != nil {
		appCtx.Close()
		appCtx = nil
	}
}

func newRoot(stdin io.Reader) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:          "highways",
		Short:        "Highway network manager: cities, tolls and routes",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(v, cfgFile)
		if err != nil {
			return err
		}
		appCtx, err = app.Open(cfg)
		return err
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		opts := console.Options{
			AskConsent:        appCtx.Config.AskConsent,
			ConfirmSaveOnExit: appCtx.Config.ConfirmSaveOnExit,
		}
		m := console.New(stdin, cmd.OutOrStdout(), appCtx.Network, appCtx.Files, opts, appCtx.Log)
		return m.Run()
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./highways.yaml or ~/.highways/highways.yaml)")
	flags.String("file", "", "network file to load, e.g. rodovias.txt")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	_ = v.BindPFlag(app.KeyDataFile, flags.Lookup("file"))
	_ = v.BindPFlag(app.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(routeCmd(), crossingsCmd(), printCmd(), fingerprintCmd())
	return root
}

// requireFile fails subcommands that were started without a network file.
func requireFile() error {
	if appCtx.Files.Path() == "" {
		return domain.ErrNoFile
	}
	return nil
}
