package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/localstore"
	"github.com/Ramsagar705/aqua-blue-hydropack/internal/repo"
)

func newLocalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Inspect submissions saved while the backend was unreachable",
	}

	keys := &cobra.Command{
		Use:   "keys",
		Short: "List the local storage slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := repo.OpenLocalStore(a.cfg.Client.LocalDBPath)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := repo.AutoMigrateSlots(db); err != nil {
				return err
			}
			names, err := repo.NewSlotStorage(db).Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show [slot]",
		Short: "Print the records of a slot as JSON",
		Long: `Print the records of a slot as JSON.

The slot defaults to ` + localstore.OrdersKey + `; contact messages live in ` + localstore.ContactsKey + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot := localstore.OrdersKey
			if len(args) == 1 {
				slot = args[0]
			}
			store, closeStore, err := openLocalStore(a.cfg.Client)
			if err != nil {
				return err
			}
			defer closeStore()

			records, err := store.Records(cmd.Context(), slot)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.AddCommand(keys, show)
	return cmd
}
