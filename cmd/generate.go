package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thellimist/apigen/internal/apispec"
	"github.com/thellimist/apigen/internal/apperr"
	"github.com/thellimist/apigen/internal/project"
	"github.com/thellimist/apigen/internal/ui"
)

var (
	flagInputFile  string
	flagParentName string
	flagOutputDir  string
	flagQuiet      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a project from a spec file",
	Long: `Generate a Spring Boot skeleton project from a JSON (or YAML) list of
endpoint specs.

Each run creates a new directory named <parentName>_<n>, where n is one more
than the highest serial already present in the output directory.

Examples:
  # Generate into the working directory
  apigen generate --inputFile=specs.json

  # Custom base name and output directory
  apigen generate --inputFile=specs.json --parentName=payments --outputDir=./out`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&flagInputFile, "inputFile", "", "path to the endpoint spec file (required)")
	f.StringVar(&flagParentName, "parentName", "", "base name for the project directory (default from config)")
	f.StringVar(&flagOutputDir, "outputDir", "", "directory the project is created in (default from config)")
	f.BoolVar(&flagQuiet, "quiet", false, "suppress the progress bar")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(flagInputFile) == "" {
		return apperr.InvalidInput("--inputFile is required")
	}

	specs, err := apispec.ParseFile(flagInputFile)
	if err != nil {
		return err
	}
	logger.Debug("parsed spec file", "path", flagInputFile, "endpoints", len(specs))

	parent := flagParentName
	if strings.TrimSpace(parent) == "" {
		parent = cfg.Generator.ParentName
	}

	var opts []project.Option
	if !flagQuiet {
		opts = append(opts, project.WithReporter(ui.NewProgressReporter(cmd.ErrOrStderr())))
	}

	res, err := newGenerator(flagOutputDir, opts...).Generate(cmd.Context(), specs, parent)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Message())
	return nil
}
