package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"aidconnect/internal/domain"
	"aidconnect/internal/ui"
	"aidconnect/internal/wizard"
)

func (c *cli) registerCmd() *cobra.Command {
	var (
		email, name, phone, address string
		lat, lng                    string
	)
	cmd := &cobra.Command{
		Use:         "register",
		Short:       "Create an account and log in",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email, err = c.ask(cmd, wizard.Field{Name: "email", Label: "Email"}, email); err != nil {
				return err
			}
			password, err := c.ask(cmd, wizard.Field{Name: "password", Label: "Password", Help: "at least 6 characters", Secret: true}, "")
			if err != nil {
				return err
			}
			if name, err = c.ask(cmd, wizard.Field{Name: "name", Label: "Name"}, name); err != nil {
				return err
			}
			if address, err = c.ask(cmd, wizard.Field{Name: "address", Label: "Address"}, address); err != nil {
				return err
			}
			if lat, err = c.ask(cmd, wizard.Field{Name: "latitude", Label: "Latitude"}, lat); err != nil {
				return err
			}
			if lng, err = c.ask(cmd, wizard.Field{Name: "longitude", Label: "Longitude"}, lng); err != nil {
				return err
			}

			in := domain.UserCreate{
				Email:    email,
				Password: password,
				Profile:  domain.UserProfile{Name: name},
			}
			if phone != "" {
				in.Phone = &phone
			}
			if in.Profile.Location, err = parseLocation(address, lat, lng); err != nil {
				return err
			}
			if err := wizard.Check(&in); err != nil {
				return err
			}

			u, err := c.wire.Session.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			ui.Successf(c.out, "Welcome to Aid-Connect, %s", u.Profile.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number (optional)")
	cmd.Flags().StringVar(&address, "address", "", "home address")
	cmd.Flags().StringVar(&lat, "lat", "", "home latitude")
	cmd.Flags().StringVar(&lng, "lng", "", "home longitude")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Log in with email and password",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email, err = c.ask(cmd, wizard.Field{Name: "email", Label: "Email"}, email); err != nil {
				return err
			}
			password, err := c.ask(cmd, wizard.Field{Name: "password", Label: "Password", Secret: true}, "")
			if err != nil {
				return err
			}
			u, err := c.wire.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			ui.Successf(c.out, "Logged in as %s", u.Profile.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Forget the stored session",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipRestore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.wire.Session.Logout(); err != nil {
				return err
			}
			ui.Successf(c.out, "Logged out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.user()
			if err != nil {
				return err
			}
			ui.Titlef(c.out, "%s <%s>", u.Profile.Name, u.Email)
			fmt.Fprintf(c.out, "  id: %s\n", u.UserID)
			fmt.Fprintf(c.out, "  home: %s (%.4f, %.4f)\n", u.Profile.Location.Address, u.Profile.Location.Latitude, u.Profile.Location.Longitude)
			fmt.Fprintf(c.out, "  rating: %.1f from %d ratings · trust %.1f\n",
				u.Stats.CommunityRating, u.Stats.TotalRatings, u.Verification.TrustScore)
			fmt.Fprintf(c.out, "  member since: %s\n", u.CreatedAt.Local().Format("2006-01-02"))
			return nil
		},
	}
}

func parseLocation(address, lat, lng string) (domain.Location, error) {
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("latitude must be a number")
	}
	lngF, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("longitude must be a number")
	}
	return domain.Location{Latitude: latF, Longitude: lngF, Address: address}, nil
}
