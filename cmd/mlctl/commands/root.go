package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	client "github.com/peteraglen/mojaloop-client"
)

// Config is the resolved mlctl configuration. Values come from flags,
// MLCTL_* environment variables and an optional mlctl.yaml, in that order
// of precedence.
type Config struct {
	BaseURL  string        `mapstructure:"base-url"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log-level"`
	Tagged   bool          `mapstructure:"tagged"`
}

var (
	cfgFile string
	cfg     Config
	api     *client.Client
	logger  zerolog.Logger
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mlctl:", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "mlctl",
		Short:         "Query and operate a Mojaloop ledger or settlement service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cmd); err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

			opts := []client.Option{
				client.WithTimeout(cfg.Timeout),
				client.WithRequestLogger(client.NewZerologLogger(logger)),
			}
			if cfg.Token != "" {
				opts = append(opts, client.WithAuthScheme("Bearer"), client.WithAuthToken(cfg.Token))
			}

			api = client.New(cfg.BaseURL, opts...)
			return api.Connect(cmd.Context())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			api.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./mlctl.yaml)")
	flags.String("base-url", "", "service base URL (e.g. http://central-settlement.local)")
	flags.String("token", "", "bearer token")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("tagged", false, "print Mojaloop errors as tagged results instead of failing")

	root.AddCommand(
		participantsCmd(),
		settlementsCmd(),
		windowsCmd(),
		reportCmd(),
		healthCmd(),
	)

	return root
}

func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("mlctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MLCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("config parse error: %w", err)
	}

	if cfg.BaseURL == "" {
		return errors.New("base URL must be set (--base-url, MLCTL_BASE_URL or mlctl.yaml)")
	}

	return nil
}

// callOptions maps the --tagged flag onto the client's result mode.
func callOptions() []client.CallOption {
	return []client.CallOption{client.WithThrowOnError(!cfg.Tagged)}
}
