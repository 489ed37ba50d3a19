package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/basaltconf/internal/application"
	"github.com/eugenenazirov/basaltconf/internal/config"
	"github.com/eugenenazirov/basaltconf/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "basaltconf: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("basaltconf", "Locate and inspect the vkBasalt configuration file")
	configFile := kingpinApp.Flag("config", "Configuration file to use before any other candidate").String()
	logLevel := kingpinApp.Flag("log-level", "Log level for diagnostics written to stderr").Default("error").Enum("debug", "info", "warn", "error")

	pathsCmd := kingpinApp.Command("paths", "List candidate configuration paths in priority order; * marks the loaded file")

	getCmd := kingpinApp.Command("get", "Print a single option converted to the requested type")
	getKey := getCmd.Arg("key", "Option name").Required().String()
	getType := getCmd.Flag("type", "Conversion to apply").Short('t').Default("string").Enum("string", "int", "float", "bool", "list")
	var defaultSet bool
	getDefault := getCmd.Flag("default", "Value printed when the option is missing or invalid").IsSetByUser(&defaultSet).String()

	dumpCmd := kingpinApp.Command("dump", "Print every loaded option")
	dumpFormat := dumpCmd.Flag("format", "Output format").Default(application.FormatText).Enum(application.FormatText, application.FormatYAML)

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(application.Settings{ConfigFile: *configFile}, logger)

	switch command {
	case pathsCmd.FullCommand():
		return app.WritePaths(stdout)
	case getCmd.FullCommand():
		kind, err := config.ParseKind(*getType)
		if err != nil {
			return err
		}
		var def *string
		if defaultSet {
			def = getDefault
		}
		return app.WriteOption(stdout, *getKey, kind, def)
	case dumpCmd.FullCommand():
		return app.WriteDump(stdout, *dumpFormat)
	}

	logger.Error("unhandled command", zap.String("command", command))
	return fmt.Errorf("unhandled command %q", command)
}
