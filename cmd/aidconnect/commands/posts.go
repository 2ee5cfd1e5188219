package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"aidconnect/internal/domain"
	"aidconnect/internal/services/listing"
	"aidconnect/internal/ui"
	"aidconnect/internal/wizard"
)

func (c *cli) requestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Post and browse help requests",
	}
	cmd.AddCommand(c.requestNewCmd(), c.requestListCmd(), c.requestShowCmd())
	return cmd
}

func (c *cli) requestNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Post a help request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			form := wizard.NewRequestForm(&u.Profile.Location)
			if err := wizard.Run(cmd.Context(), form.Wizard, c.prompt); err != nil {
				return err
			}
			in, err := form.Build()
			if err != nil {
				return err
			}
			r, err := c.wire.API.CreateRequest(cmd.Context(), in)
			if err != nil {
				return err
			}
			ui.Successf(c.out, "Posted request %s (%s priority, urgency %.1f)", r.RequestID, r.Priority, r.UrgencyScore)
			if r.EstimatedResponseTime != nil {
				ui.Infof(c.out, "Expected response %s", *r.EstimatedResponseTime)
			}
			return nil
		},
	}
}

func (c *cli) requestListCmd() *cobra.Command {
	var (
		f                   listing.Filter
		category, status    string
		priority, sortOrder string
		near                bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse help requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			f.Category = domain.Category(category)
			f.Status = domain.RequestStatus(status)
			f.Priority = domain.Priority(priority)
			f.Sort = listing.Sort(sortOrder)
			if near {
				f.Near = &u.Profile.Location
			}
			cards, err := c.wire.Listing.Requests(cmd.Context(), f, &u.Profile.Location)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				ui.Infof(c.out, "No requests match")
				return nil
			}
			for _, card := range cards {
				ui.RequestCard(c.out, card)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&category, "category", "", "only this category")
	fl.StringVar(&status, "status", "", "only this status (default open and matched)")
	fl.StringVar(&priority, "priority", "", "only this priority")
	fl.StringVar(&f.Search, "search", "", "text to find in title or description")
	fl.BoolVar(&near, "near", false, "only requests around your home location")
	fl.IntVar(&f.Radius, "radius", 0, "search radius in meters with --near (default 5000)")
	fl.IntVar(&f.Limit, "limit", 0, "maximum number of results (default 20)")
	fl.StringVar(&sortOrder, "sort", string(listing.SortUrgency), "order of results: "+sortNames())
	return cmd
}

func (c *cli) requestShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one request with its suggested helpers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			card, err := c.wire.Listing.Request(cmd.Context(), args[0], &u.Profile.Location)
			if err != nil {
				return err
			}
			ui.RequestDetail(c.out, card)
			return nil
		},
	}
}

func (c *cli) offerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Post and browse help offers",
	}
	cmd.AddCommand(c.offerNewCmd(), c.offerListCmd())
	return cmd
}

func (c *cli) offerNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Post a help offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			form := wizard.NewOfferForm(&u.Profile.Location)
			if err := wizard.Run(cmd.Context(), form.Wizard, c.prompt); err != nil {
				return err
			}
			in, err := form.Build()
			if err != nil {
				return err
			}
			o, err := c.wire.API.CreateOffer(cmd.Context(), in)
			if err != nil {
				return err
			}
			ui.Successf(c.out, "Posted offer %s", o.OfferID)
			return nil
		},
	}
}

func (c *cli) offerListCmd() *cobra.Command {
	var (
		f        listing.OfferFilter
		category string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse help offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			f.Category = domain.Category(category)
			cards, err := c.wire.Listing.Offers(cmd.Context(), f, &u.Profile.Location)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				ui.Infof(c.out, "No offers match")
				return nil
			}
			for _, card := range cards {
				ui.OfferCard(c.out, card)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	cmd.Flags().StringVar(&f.Search, "search", "", "text to find in title, description or skills")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "maximum number of results (default 20)")
	return cmd
}

func sortNames() string {
	names := make([]string, len(listing.Sorts))
	for i, s := range listing.Sorts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
