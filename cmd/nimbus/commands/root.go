package commands

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/nimbus/cmd/nimbus/commands/iot"
	"github.com/MacroPower/nimbus/pkg/help"
	"github.com/MacroPower/nimbus/pkg/helploader"
	"github.com/MacroPower/nimbus/pkg/helprender"
	"github.com/MacroPower/nimbus/pkg/log"
)

// defaultProfile is the CLI profile examples are filtered against.
const defaultProfile = "latest"

// NewRootCmd returns the nimbus root command.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	reg := helploader.NewRegistry()
	iot.RegisterHelp(reg)
	cmd.SetHelpFunc(helpFunc(reg))

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(iot.NewIoTCmd())

	return cmd
}

// helpFunc builds, loads, and renders the help file for a command. Load
// failures are configuration errors in the help documents themselves;
// they abort this help render with a message rather than crashing.
func helpFunc(reg *helploader.Registry) func(*cobra.Command, []string) {
	return func(cc *cobra.Command, _ []string) {
		f := &help.File{
			Command: help.CommandName(cc),
			Profile: defaultProfile,
		}

		if err := helploader.Load(f, cc, helploader.Loaders(reg)); err != nil {
			fmt.Fprintln(cc.ErrOrStderr(), err.Error())

			return
		}

		helprender.New(cc.OutOrStdout()).Render(cc.Root().Name(), f)
	}
}
