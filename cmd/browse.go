package main

import (
	"bufio"
	"context"
	"countries/internal/config"
	"countries/internal/render"
	"countries/internal/session"
	"countries/pkg/domain"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"
)

const browseHelp = `commands:
  search <text>   look up countries by name, empty text shows the default list
  filter <text>   show loaded countries whose name contains text
  region <name>   show loaded countries of a region, All clears it
  detail <name>   show a country with its border countries
  dark            toggle dark mode
  show            show the current list
  quit            leave`

// browser renders session state. Renders from the debounced search and from
// the command loop are serialized.
type browser struct {
	mu       sync.Mutex
	renderer *render.Renderer
}

func (b *browser) show(state session.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.renderer.SetDarkMode(state.DarkMode)
	b.renderer.Header()
	switch {
	case state.Loading:
		b.renderer.Status("loading...")
	case state.Err != nil:
		b.renderer.Error(state.Err)
	default:
		b.renderer.List(state.Visible)
		b.renderer.Status("%d of %d countries", len(state.Visible), state.Total)
	}
}

func (b *browser) render(fn func(r *render.Renderer)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fn(b.renderer)
}

// runBrowse executes commands read line by line from in until quit or EOF.
func runBrowse(ctx context.Context, in io.Reader, out io.Writer, sess *session.Session, b *browser) error {
	b.render(func(r *render.Renderer) { r.Status("loading...") })
	// the result is rendered through the session's OnChange
	_ = sess.Load(ctx)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		command, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "":
		case "search":
			sess.Search(arg)
		case "filter":
			sess.SetFilter(arg)
			b.show(sess.State())
		case "region":
			sess.SetRegion(domain.Region(arg))
			b.show(sess.State())
		case "detail":
			detail, err := sess.Detail(ctx, arg)
			b.render(func(r *render.Renderer) {
				if err != nil {
					r.Error(err)

					return
				}
				r.Detail(detail)
			})
		case "dark":
			if _, err := sess.ToggleDarkMode(ctx); err != nil {
				b.render(func(r *render.Renderer) { r.Error(err) })
			}
		case "show":
			b.show(sess.State())
		case "quit", "exit":
			return nil
		default:
			b.render(func(*render.Renderer) { _, _ = fmt.Fprintln(out, browseHelp) })
		}
	}

	return scanner.Err() //nolint: wrapcheck
}

func browseCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browses countries interactively, one command per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			b := &browser{}
			sess, err := session.New(ctx, a.countries, a.preferences, session.Options{
				User:           domain.LocalUser,
				SearchDebounce: cfg.Browse.SearchDebounce,
				OnChange:       b.show,
			})
			if err != nil {
				return err //nolint: wrapcheck
			}
			defer sess.Close()
			b.renderer = render.New(cmd.OutOrStdout(), sess.DarkMode())

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), browseHelp)

			return runBrowse(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), sess, b)
		},
	}
}
