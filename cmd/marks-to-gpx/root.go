package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/marks-to-gpx/config"
	"github.com/theoremus-urban-solutions/marks-to-gpx/converter"
	"github.com/theoremus-urban-solutions/marks-to-gpx/gpx"
	"github.com/theoremus-urban-solutions/marks-to-gpx/internal"
	"github.com/theoremus-urban-solutions/marks-to-gpx/marks"
)

// errReported marks a failure whose message has already been logged
var errReported = errors.New("reported")

type options struct {
	output     string
	configPath string
	logLevel   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "convert <input_path>",
		Short: "Convert racing marks JSON to GPX waypoints",
		Long: `Convert a JSON list of racing-mark records into a GPX 1.1 waypoint file.

Each mark becomes one <wpt> with a name, description, comment (formatted
position) and symbol derived from the mark's icon. Marks that cannot be
read are skipped with a warning.`,
		Example: `  convert marks2.json
  convert marks2.json -o waypoints.gpx`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output GPX file (default: input file with .gpx extension)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file overriding the GPX metadata")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	return cmd
}

func runConvert(input string, opts *options, stdout, stderr io.Writer) error {
	cfg, err := config.LoadAppConfig(opts.configPath)
	if err != nil {
		log := internal.InitLogging(stderr, opts.logLevel)
		log.Error().Msg(err.Error())
		return errReported
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
		if err := config.Validate(cfg); err != nil {
			fmt.Fprintf(stderr, "Error: invalid --log-level %q: must be one of debug, info, warn, error\n", opts.logLevel)
			return errReported
		}
	}
	log := internal.InitLogging(stderr, cfg.Logging.Level)

	conv := converter.NewConverter(cfg, log)
	res, err := conv.Run(input, opts.output)
	if err != nil {
		reportError(log, stderr, input, err)
		return errReported
	}

	fmt.Fprintf(stdout, "Successfully converted %d waypoints to '%s'\n", res.Count(), res.OutputPath)
	return nil
}

func reportError(log zerolog.Logger, stderr io.Writer, input string, err error) {
	switch {
	case errors.Is(err, marks.ErrInputNotFound):
		log.Error().Msgf("File '%s' not found.", input)
	case errors.Is(err, marks.ErrInputParse):
		log.Error().Msgf("Invalid JSON in file '%s': %s", input, cause(err, marks.ErrInputParse))
	case errors.Is(err, gpx.ErrOutputWrite):
		// no level prefix on this line
		fmt.Fprintf(stderr, "Error writing GPX file: %s\n", cause(err, gpx.ErrOutputWrite))
	default:
		log.Error().Msg(err.Error())
	}
}

// cause strips the sentinel's own text from a wrapped error message
func cause(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// execute runs the command line and returns the process exit status
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}
