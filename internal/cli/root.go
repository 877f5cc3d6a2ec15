package cli

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biolink/biolink-model-toolkit/internal/app"
	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "BMT"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "bmt",
		Short:   "Lookup and classification over the biolink model",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().String("schema", "", "Schema file path (overrides remote fetch)")
	cmd.PersistentFlags().String("schema-url", "", "Schema document URL")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("schema", cmd.PersistentFlags().Lookup("schema"))
	_ = viper.BindPFlag("schema_url", cmd.PersistentFlags().Lookup("schema-url"))

	cmd.AddCommand(newAncestorsCommand())
	cmd.AddCommand(newDescendantsCommand())
	cmd.AddCommand(newChildrenCommand())
	cmd.AddCommand(newParentCommand())
	cmd.AddCommand(newElementCommand())
	cmd.AddCommand(newClassifyCommand())
	cmd.AddCommand(newMappingCommand())
	cmd.AddCommand(newPrefixCommand())
	cmd.AddCommand(newSubsetCommand())
	cmd.AddCommand(newModelVersionCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("bmt")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/bmt")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// loadToolkit builds the session for a command invocation from config
// and flags.
func loadToolkit(cmd *cobra.Command) (*app.Toolkit, error) {
	roots := types.RootNames{}
	if err := viper.UnmarshalKey("roots", &roots); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse roots configuration").
			WithCause(err)
	}
	return app.New(cmd.Context(), app.LoadRequest{
		Path:             viper.GetString("schema"),
		URL:              viper.GetString("schema_url"),
		PredicateMapPath: viper.GetString("predicate_map"),
		SkipPredicateMap: viper.GetString("predicate_map") == "",
		Roots:            roots,
		HTTPTimeoutSec:   viper.GetInt("http_timeout_sec"),
		HTTPRetries:      viper.GetInt("http_retries"),
		HTTPRetryDelayMs: viper.GetInt("http_retry_delay_ms"),
	})
}

// printWarnings flushes accumulated lookup warnings to stderr. Display
// lives here, never in the core.
func printWarnings(toolkit *app.Toolkit) {
	if report := toolkit.DumpWarnings(); report != "" {
		os.Stderr.WriteString(report)
		toolkit.ClearWarnings()
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
