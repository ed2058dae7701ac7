package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdkmanager/internal/adapters"
	"sdkmanager/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "SDKMANAGER"

type RootConfig struct {
	ConfigFile   string
	LogLevel     string
	SDKRoot      string
	CacheDir     string
	Keyring      string
	ManifestFile string
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
		Use:     "sdkmanager",
		Short:   "Android SDK package manager backed by a signed transparency log",
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
	cmd.PersistentFlags().StringVar(&cfg.SDKRoot, "sdk-root", "", "SDK root to install into (defaults to ANDROID_HOME)")
	cmd.PersistentFlags().StringVar(&cfg.CacheDir, "cache-dir", "", "Cache directory for manifests and downloads")
	cmd.PersistentFlags().StringVar(&cfg.Keyring, "keyring", "", "GPG keyring used to verify the manifest signature")
	cmd.PersistentFlags().StringVar(&cfg.ManifestFile, "manifest-file", "", "Load the package manifest from a local file instead of the network")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("sdk_root", cmd.PersistentFlags().Lookup("sdk-root"))
	_ = viper.BindPFlag("cache_dir", cmd.PersistentFlags().Lookup("cache-dir"))
	_ = viper.BindPFlag("keyring", cmd.PersistentFlags().Lookup("keyring"))
	_ = viper.BindPFlag("manifest_file", cmd.PersistentFlags().Lookup("manifest-file"))

	cmd.AddCommand(newInstallCommand())
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newLicensesCommand())
	cmd.AddCommand(newIndexCommand())
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

	viper.SetConfigName("sdkmanager")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/sdkmanager")
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

// newAppService wires the service from the effective configuration.
// Replaceable in tests.
var newAppService = func() app.Service {
	cacheDir := viper.GetString("cache_dir")
	if cacheDir == "" {
		cacheDir = app.DefaultCacheDir()
	}
	keyring := viper.GetString("keyring")
	if keyring == "" {
		keyring = filepath.Join(cacheDir, "keyring.gpg")
	}
	service := app.NewService(cacheDir, keyring)
	if manifestFile := viper.GetString("manifest_file"); manifestFile != "" {
		service.Manifest = adapters.NewManifestFileAdapter(manifestFile)
	}
	return service
}

// sdkRoot resolves the SDK root from the flag, config, or the
// conventional Android environment variables.
func sdkRoot() string {
	if root := viper.GetString("sdk_root"); root != "" {
		return root
	}
	for _, env := range []string{"ANDROID_HOME", "ANDROID_SDK_ROOT"} {
		if root := os.Getenv(env); root != "" {
			return root
		}
	}
	return ""
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodePermissionDenied:
		return 4
	case errbuilder.CodeNotFound:
		return 5
	case errbuilder.CodeInternal:
		return 6
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
