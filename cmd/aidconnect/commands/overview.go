package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"aidconnect/internal/ui"
)

func (c *cli) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Community overview and your recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.user(); err != nil {
				return err
			}
			sum, err := c.wire.Dashboard.Load(cmd.Context())
			if err != nil {
				return err
			}
			ui.Dashboard(c.out, sum)
			return nil
		},
	}
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "health",
		Short:       "Check backend health",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.wire.API.Health(cmd.Context())
			if err != nil {
				return err
			}
			ui.Successf(c.out, "%s is %s", c.wire.Config.Server, h.Status)
			names := make([]string, 0, len(h.Services))
			for name := range h.Services {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(c.out, "  %s: %s\n", name, h.Services[name])
			}
			return nil
		},
	}
}
