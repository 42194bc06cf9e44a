package main

import (
	"context"
	"countries/internal/config"
	"countries/internal/countries"
	"countries/internal/render"
	"countries/pkg/domain"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// withApp runs fn with the services and a renderer in the stored dark mode.
func withApp(ctx context.Context, cmd *cobra.Command, cfg *config.Config,
	fn func(a *app, r *render.Renderer) error) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	dark, err := a.preferences.DarkMode(ctx, domain.LocalUser)
	if err != nil {
		return fmt.Errorf("could not read dark mode preference: %w", err)
	}

	return fn(a, render.New(cmd.OutOrStdout(), dark))
}

func listCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Shows the default countries, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			region, _ := cmd.Flags().GetString("region")

			return withApp(cmd.Context(), cmd, cfg, func(a *app, r *render.Renderer) error {
				r.Header()
				list, err := a.countries.Countries(cmd.Context())
				if err != nil {
					r.Error(err)

					return err
				}

				visible := countries.Filter(list, domain.FilterCriteria{Text: query, Region: domain.Region(region)})
				r.List(visible)
				r.Status("%d of %d countries", len(visible), len(list))

				return nil
			})
		},
	}

	cmd.Flags().StringP("query", "q", "", "Case-insensitive part of the country name")
	cmd.Flags().StringP("region", "r", "", "Region to show: "+regionNames())

	return cmd
}

func searchCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Looks up countries by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cmd, cfg, func(a *app, r *render.Renderer) error {
				r.Header()
				list, err := a.countries.Search(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					r.Error(err)

					return err
				}
				r.List(list)

				return nil
			})
		},
	}
}

func detailCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <name>",
		Short: "Shows a country with its border countries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cmd, cfg, func(a *app, r *render.Renderer) error {
				r.Header()
				detail, err := a.countries.Detail(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					r.Error(err)

					return err
				}
				r.Detail(detail)

				return nil
			})
		},
	}
}

func darkModeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "dark-mode [on|off|toggle]",
		Short:     "Shows or changes the dark mode preference",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), cmd, cfg, func(a *app, r *render.Renderer) error {
				ctx := cmd.Context()
				dark, err := a.preferences.DarkMode(ctx, domain.LocalUser)
				if err != nil {
					return fmt.Errorf("could not read dark mode preference: %w", err)
				}

				if len(args) == 1 {
					var pref *domain.Preference
					switch args[0] {
					case "on":
						pref, err = a.preferences.SetDarkMode(ctx, domain.LocalUser, true)
					case "off":
						pref, err = a.preferences.SetDarkMode(ctx, domain.LocalUser, false)
					default:
						pref, err = a.preferences.ToggleDarkMode(ctx, domain.LocalUser)
					}
					if err != nil {
						return fmt.Errorf("could not store dark mode preference: %w", err)
					}
					dark = pref.DarkMode
					r.SetDarkMode(dark)
				}

				r.Header()
				r.Status("dark mode is %s", onOff(dark))

				return nil
			})
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func regionNames() string {
	names := []string{string(domain.RegionAll)}
	for _, region := range domain.Regions {
		names = append(names, string(region))
	}

	return strings.Join(names, ", ")
}
