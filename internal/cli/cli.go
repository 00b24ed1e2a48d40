package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"github.com/vk/packer/internal/app"
	"github.com/vk/packer/internal/executor"
	"github.com/vk/packer/internal/publish"
)

// EnvPrefix prefixes every environment variable that supplies a flag default.
const EnvPrefix = "PACKER"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("packer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Packer - picks the most valuable set of things that fits into a package.

Usage:
  packer [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a file with one packing task per line.

Every long option can also be set through the environment, e.g.
PACKER_WORKERS=8 or PACKER_LOG_LEVEL=debug. Flags take precedence.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the input file.")
	iFlag := flagSet.String("i", "", "Path to the input file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL file with packing limits.")
	solverFlag := flagSet.String("solver", "", "Solver to use. Options: 'brute-force' or 'branch-and-bound'.")
	workersFlag := flagSet.Int("workers", executor.DefaultWorkers, "Number of concurrent workers.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP server. 0 is disabled.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io server that receives every result line.")
	publishEventFlag := flagSet.String("publish-event", publish.DefaultEvent, "Event name used when publishing.")
	publishNamespaceFlag := flagSet.String("publish-namespace", publish.DefaultNamespace, "socket.io namespace used when publishing.")
	publishInsecureFlag := flagSet.Bool("publish-insecure", false, "Skip TLS certificate verification of the publish URL.")

	if err := applyEnv(flagSet); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" && *servePortFlag <= 0 {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:        path,
		ConfigPath:       *configFlag,
		Solver:           strings.ToLower(*solverFlag),
		WorkerCount:      *workersFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		ServePort:        *servePortFlag,
		PublishURL:       *publishURLFlag,
		PublishEvent:     *publishEventFlag,
		PublishNamespace: *publishNamespaceFlag,
		PublishInsecure:  *publishInsecureFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// applyEnv seeds flag defaults from PACKER_* variables. Single letter
// shorthands have no variable.
func applyEnv(flagSet *flag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []string
	flagSet.VisitAll(func(f *flag.Flag) {
		if len(f.Name) == 1 || !v.IsSet(f.Name) {
			return
		}
		if err := f.Value.Set(v.GetString(f.Name)); err != nil {
			name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			errs = append(errs, fmt.Sprintf("invalid value %q for %s: %v", v.GetString(f.Name), name, err))
			return
		}
		f.DefValue = f.Value.String()
	})
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
