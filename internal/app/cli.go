package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kbukum/airelay/bootstrap"
	"github.com/kbukum/airelay/config"
	"github.com/kbukum/airelay/dispatch"
	"github.com/kbukum/airelay/translation"
	"github.com/kbukum/airelay/version"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configFile string
	envFile    string
	jsonOut    bool
	fs         afero.Fs
}

// NewRootCmd builds the airelay command tree over the OS filesystem.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	flags := &rootFlags{fs: fs}
	root := &cobra.Command{
		Use:           "airelay",
		Short:         "Send chat, translation and transcription requests to hosted AI providers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to config.yml")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to a .env file with provider keys")
	root.PersistentFlags().BoolVar(&flags.jsonOut, "json", false, "Print the full result as JSON")

	root.AddCommand(newAskCmd(flags))
	root.AddCommand(newTranslateCmd(flags))
	root.AddCommand(newTranscribeCmd(flags))
	root.AddCommand(newMergeCmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}

func newAskCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [message...]",
		Short: "Ask the chat model with the system prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := strings.Join(args, " ")
			return runDispatch(cmd, flags, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result {
				return d.AskChat(ctx, msg)
			})
		},
	}
}

func newTranslateCmd(flags *rootFlags) *cobra.Command {
	var source, target string
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text, by default with the configured language pair",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := translation.TranslateRequest{
				Text:       strings.Join(args, " "),
				SourceLang: source,
				TargetLang: target,
			}
			return runDispatch(cmd, flags, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result {
				return d.TranslateWith(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Source language code")
	cmd.Flags().StringVar(&target, "target", "", "Target language code")
	return cmd
}

func newTranscribeCmd(flags *rootFlags) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Transcribe a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio, err := afero.ReadFile(flags.fs, args[0])
			if err != nil {
				return fmt.Errorf("read audio: %w", err)
			}
			return runDispatch(cmd, flags, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result {
				return d.Transcribe(ctx, audio, language)
			})
		},
	}
	cmd.Flags().StringVar(&language, "language", "en", "Spoken language tag")
	return cmd
}

func newMergeCmd(flags *rootFlags) *cobra.Command {
	var transcript string
	cmd := &cobra.Command{
		Use:   "merge <audio-file>",
		Short: "Merge a live transcript with a fresh transcription of the recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio, err := afero.ReadFile(flags.fs, args[0])
			if err != nil {
				return fmt.Errorf("read audio: %w", err)
			}
			return runDispatch(cmd, flags, func(ctx context.Context, d *dispatch.Dispatcher) dispatch.Result {
				return d.MergeTranscripts(ctx, transcript, audio)
			})
		},
	}
	cmd.Flags().StringVar(&transcript, "transcript", "", "Live transcript of the recording")
	return cmd
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	var host string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			a, err := bootstrap.NewApp(cfg)
			if err != nil {
				return err
			}
			return a.Run(commandContext(cmd))
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Listen host")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			return nil
		},
	}
}

func (f *rootFlags) load() (*config.Config, error) {
	var opts []config.LoaderOption
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}
	return config.Load(opts...)
}

// runDispatch boots the app, runs one operation and prints its result.
// A failed result becomes the command's error.
func runDispatch(cmd *cobra.Command, flags *rootFlags, op func(context.Context, *dispatch.Dispatcher) dispatch.Result) error {
	cfg, err := flags.load()
	if err != nil {
		return err
	}
	a, err := bootstrap.NewApp(cfg)
	if err != nil {
		return err
	}

	var res dispatch.Result
	if err := a.RunTask(commandContext(cmd), func(ctx context.Context, d *dispatch.Dispatcher) error {
		res = op(ctx, d)
		return nil
	}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
		if !res.OK() {
			return res.Err()
		}
		return nil
	}
	if !res.OK() {
		return res.Err()
	}
	fmt.Fprintln(out, res.Text)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
