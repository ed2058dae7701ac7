package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdkmanager/internal/app"
)

type installOptions struct {
	Refresh      bool
	PackageFiles []string
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install <package>...",
		Short: "Install packages by sdk-style path, e.g. \"build-tools;30.0.3\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "Refetch the package manifest before installing")
	cmd.Flags().StringSliceVar(&opts.PackageFiles, "package-file", nil, "File with one package path per line")

	_ = viper.BindPFlag("refresh", cmd.Flags().Lookup("refresh"))
	_ = viper.BindPFlag("package_files", cmd.Flags().Lookup("package-file"))

	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions, args []string) error {
	packages := append([]string{}, args...)
	for _, file := range opts.PackageFiles {
		fromFile, err := readPackageFile(file)
		if err != nil {
			return err
		}
		packages = append(packages, fromFile...)
	}

	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{
		Packages: packages,
		Root:     sdkRoot(),
		Refresh:  resolveBool(cmd, opts.Refresh, "refresh", "refresh"),
	})
	if err != nil {
		return err
	}

	var firstErr error
	for _, outcome := range result.Outcomes {
		switch {
		case outcome.Err != nil:
			fmt.Fprintf(os.Stderr, "%s: %s\n", outcome.Package, errorMessage(outcome.Err))
			if firstErr == nil {
				firstErr = outcome.Err
			}
		case outcome.Skipped:
			fmt.Printf("%s: already installed at %s\n", outcome.Package, outcome.InstallDir)
		default:
			fmt.Printf("%s: installed to %s\n", outcome.Package, outcome.InstallDir)
		}
	}
	return firstErr
}

func readPackageFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read package file: " + path).
			WithCause(err)
	}
	defer f.Close()

	var packages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		packages = append(packages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read package file: " + path).
			WithCause(err)
	}
	return packages, nil
}
