package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotcommander/postlint/internal/config"
	"github.com/dotcommander/postlint/internal/store"
)

var (
	contextFollowers int
	contextHandle    string
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage stored default analysis context",
	Long: `Context persists default analysis context (follower count, handle) so
repeated runs don't need flags. Values are kept in a small JSON store
under your home directory.`,
}

var contextSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store default context values",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStore()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("followers") {
			if contextFollowers < 0 {
				return fmt.Errorf("followers must be non-negative")
			}
			if err := kv.Save("followers", strconv.Itoa(contextFollowers)); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("handle") {
			if err := kv.Save("handle", contextHandle); err != nil {
				return err
			}
		}
		return nil
	},
}

var contextShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print stored context values",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStore()
		if err != nil {
			return err
		}
		for _, key := range []string{"handle", "followers"} {
			value, ok, err := kv.Load(key)
			if err != nil {
				return err
			}
			if ok {
				fmt.Printf("%s: %s\n", key, value)
			}
		}
		return nil
	},
}

var contextClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored context",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, err := openStore()
		if err != nil {
			return err
		}
		return kv.Clear()
	},
}

func init() {
	contextSetCmd.Flags().IntVar(&contextFollowers, "followers", 0, "Default follower count")
	contextSetCmd.Flags().StringVar(&contextHandle, "handle", "", "Author handle, for display only")

	contextCmd.AddCommand(contextSetCmd)
	contextCmd.AddCommand(contextShowCmd)
	contextCmd.AddCommand(contextClearCmd)
	rootCmd.AddCommand(contextCmd)
}

func openStore() (store.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return store.NewFileStore(cfg.StorePath), nil
}
