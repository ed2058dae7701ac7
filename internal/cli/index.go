package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdkmanager/internal/app"
)

type indexOptions struct {
	Output  string
	Refresh bool
}

func newIndexCommand() *cobra.Command {
	opts := indexOptions{}
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the package index and write it to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runIndex(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "output", "packages.yaml", "Index output path")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", true, "Refetch the package manifest before indexing")

	_ = viper.BindPFlag("index_output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("refresh", cmd.Flags().Lookup("refresh"))

	return cmd
}

func runIndex(ctx context.Context, cmd *cobra.Command, opts indexOptions) error {
	service := newAppService()
	result, err := service.WriteIndex(ctx, app.WriteIndexRequest{
		Path:    resolveString(cmd, opts.Output, "index_output", "output"),
		Refresh: resolveBool(cmd, opts.Refresh, "refresh", "refresh"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d packages\n", result.Packages)
	return nil
}
