package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdkmanager/internal/app"
)

type listOptions struct {
	Refresh bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed and available packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Refresh, "refresh", true, "Refetch the package manifest before listing")
	_ = viper.BindPFlag("refresh", cmd.Flags().Lookup("refresh"))

	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	root := sdkRoot()
	result, err := service.List(ctx, app.ListRequest{
		Root:    root,
		Refresh: resolveBool(cmd, opts.Refresh, "refresh", "refresh"),
	})
	if err != nil {
		return err
	}

	width := len("Path")
	for _, name := range result.Available {
		if len(name) > width {
			width = len(name)
		}
	}

	fmt.Println("Installed Packages:")
	fmt.Printf("  %-*s | Location\n", width, "Path")
	fmt.Printf("  %-*s | -------\n", width, "-------")
	for _, dir := range result.Installed {
		fmt.Printf("  %-*s | %s\n", width, strings.ReplaceAll(dir, "/", ";"), filepath.Join(root, dir))
	}
	fmt.Println()
	fmt.Println("Available Packages:")
	fmt.Printf("  %-*s | Version\n", width, "Path")
	fmt.Printf("  %-*s | -------\n", width, "-------")
	for _, name := range result.Available {
		fmt.Printf("  %-*s |\n", width, name)
	}
	return nil
}
