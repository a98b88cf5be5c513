package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bloomify/sprig/internal/account"
	"github.com/bloomify/sprig/internal/app"
	"github.com/bloomify/sprig/internal/cache"
	"github.com/bloomify/sprig/internal/profile"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sprig: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := app.Options{Version: version}

	root := &cobra.Command{
		Use:   "sprig",
		Short: "Bloomify account settings console",
		Long: `sprig shows your Bloomify profile, tokens and signed-in devices and
lets you change preferences, clear cached data and read the help,
privacy and terms documents from the terminal.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	root.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")
	root.Flags().IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds (optional, defaults to 10s)")

	root.AddCommand(versionCmd())
	root.AddCommand(profileCmd(&opts))
	root.AddCommand(cacheCmd(&opts))
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sprig version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sprig %s\n", version)
		},
	}
}

func profileCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print a summary of the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := app.Profile(cmd.Context(), *opts)
			if errors.Is(err, account.ErrSignedOut) {
				return errors.New("not signed in; save tokens to ~/.config/sprig/token.toml first")
			}
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), report.Summary, report.Currency)
			return nil
		},
	}
}

func printSummary(w io.Writer, s profile.Summary, currency string) {
	name := s.DisplayName
	if s.IsVerified {
		name += " ✓"
	}
	fmt.Fprintf(w, "[%s] %s\n", s.Initials(), name)
	fmt.Fprintf(w, "  %s · %s · %s · %s\n", s.UserTypeLabel(), s.RatingLabel(), s.BookingsLabel(), s.BalanceLabel(currency))
	if s.PictureURL != "" {
		fmt.Fprintf(w, "  picture: %s\n", s.PictureURL)
	}
}

func cacheCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached data",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove cached profile data and staged uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			freed, err := app.ClearCache(*opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "freed %s\n", cache.FormatBytes(freed))
			return nil
		},
	})
	return cmd
}
