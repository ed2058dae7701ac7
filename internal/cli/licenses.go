package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sdkmanager/internal/app"
)

type licensesOptions struct {
	Accept bool
}

func newLicensesCommand() *cobra.Command {
	opts := licensesOptions{}
	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "Review and accept SDK package licenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLicenses(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Accept, "accept", false, "Accept the licenses without prompting")
	_ = viper.BindPFlag("accept", cmd.Flags().Lookup("accept"))

	return cmd
}

func runLicenses(ctx context.Context, cmd *cobra.Command, opts licensesOptions) error {
	service := newAppService()
	accept := resolveBool(cmd, opts.Accept, "accept", "accept")

	result, err := service.Licenses(ctx, app.LicensesRequest{
		Root:   sdkRoot(),
		Accept: accept,
	})
	if err != nil {
		return err
	}
	if result.AlreadyAccepted {
		fmt.Println("All SDK package licenses accepted.")
		return nil
	}
	if result.Written {
		fmt.Println("License acceptance recorded.")
		return nil
	}

	fmt.Print("SDK package licenses not accepted.\nReview licenses that have not been accepted (y/N)? ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
		return nil
	}

	result, err = service.Licenses(ctx, app.LicensesRequest{
		Root:   sdkRoot(),
		Accept: true,
	})
	if err != nil {
		return err
	}
	if result.Written {
		fmt.Println("License acceptance recorded.")
	}
	return nil
}
