// Package cli is the terminal front end: cobra commands, the interactive loop
// and everything that draws to the terminal.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/legalkaz/backend/internal/chat"
	"github.com/yungbote/legalkaz/backend/internal/client"
	"github.com/yungbote/legalkaz/backend/internal/completion"
	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Config Config
	Log    *logger.Logger
}

type credentialFlags struct {
	email    string
	password string
}

func (f *credentialFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "account email")
	cmd.Flags().StringVar(&f.password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

// NewRootCommand creates the root command. Environment values are read once
// here and become the flag defaults.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: LoadConfig(nil), Log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "chat",
		Short:         "Terminal client for the LegalKaz chat backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Config.Verbose {
				return nil
			}
			log, err := logger.New("development")
			if err != nil {
				return err
			}
			opts.Log = log
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Config.ServerURL, "server", opts.Config.ServerURL, "backend base url")
	flags.StringVar(&opts.Config.CompletionURL, "completion-url", opts.Config.CompletionURL, "chat completion endpoint")
	flags.StringVar(&opts.Config.Model, "model", opts.Config.Model, "completion model")
	flags.DurationVar(&opts.Config.CompletionTimeout, "completion-timeout", opts.Config.CompletionTimeout, "completion request timeout (0 = none)")
	flags.BoolVarP(&opts.Config.Verbose, "verbose", "v", false, "log to stderr")
	flags.BoolVar(&opts.Config.Plain, "plain", false, "render without terminal styling")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewStartCommand(opts))
	return cmd
}

func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	creds := &credentialFlags{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(rootOpts.Log, rootOpts.Config.ServerURL, 0)
			ref, err := api.Register(cmd.Context(), creds.email, creds.password)
			if err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (id %s)\n", ref.Email, ref.ID)
			return nil
		},
	}
	creds.bind(cmd)
	return cmd
}

func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	creds := &credentialFlags{}
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Sign in and chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			if err := cfg.completionConfig().Validate(); err != nil {
				return err
			}
			api := client.New(rootOpts.Log, cfg.ServerURL, 0)
			ref, err := api.Login(cmd.Context(), creds.email, creds.password)
			if err != nil {
				return userError(err)
			}

			render, err := NewRenderer(cmd.OutOrStdout(), cfg.Plain, 80)
			if err != nil {
				return err
			}
			completer := completion.NewClient(rootOpts.Log, cfg.completionConfig())
			ctrl := chat.NewController(rootOpts.Log, api)
			orch := chat.NewOrchestrator(rootOpts.Log, api, completer, cfg.SystemPrompt)

			app := NewApp(cmd.InOrStdin(), cmd.OutOrStdout(), render, ctrl, orch)
			return app.Run(cmd.Context(), chat.NewState(ref))
		},
	}
	creds.bind(cmd)
	return cmd
}

// userError keeps only the message meant for people.
func userError(err error) error {
	return errors.New(errordata.UserMessage(err))
}
