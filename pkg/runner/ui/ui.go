// Package ui runs the interactive console: a menu loop over the same
// operations the command line offers.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/printers"
	"tableflip.dev/datekeeper/pkg/store"
)

// ErrNoTerminal is returned when the console is started without a terminal
// on stdin.
var ErrNoTerminal = errors.New("ui: stdin is not a terminal")

// UI is the interactive console.
type UI struct {
	Persistence store.Persistence
	Now         func() time.Time

	// Stdin and Stdout default to the process terminal.
	Stdin  io.ReadCloser
	Stdout io.WriteCloser

	svc *app.Service
}

type action int

const (
	actionAdd action = iota
	actionViewAll
	actionViewUpcoming
	actionNext
	actionRemove
	actionMove
	actionCategories
	actionExit
)

type menuItem struct {
	Action action
	Label  string
}

var mainMenu = []menuItem{
	{actionAdd, "Add a date"},
	{actionViewAll, "View all dates"},
	{actionViewUpcoming, "View upcoming dates"},
	{actionNext, "Closest date"},
	{actionRemove, "Remove a date"},
	{actionMove, "Move a date to another category"},
	{actionCategories, "Manage categories"},
	{actionExit, "Exit"},
}

var menuTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "➜  {{ .Label | bold | magenta }}",
	Inactive: "   {{ .Label }}",
	Selected: "{{ .Label | bold }}",
}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00cdcd")).
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
	subtitleStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
)

func (u *UI) Do(ctx context.Context) error {
	if u.Stdin == nil && !isTerminal(os.Stdin) {
		return ErrNoTerminal
	}
	u.svc = &app.Service{Persistence: u.Persistence, Now: u.Now}

	for {
		u.clear()
		u.banner()

		a, err := u.choose()
		if err != nil {
			if cancelled(err) {
				return nil
			}
			return err
		}
		if a == actionExit {
			_, _ = color.New(color.Bold, color.FgYellow).Fprintln(u.out(), "Goodbye.")
			return nil
		}

		if err := u.dispatch(ctx, a); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			u.report(err)
		}
		if err := u.pause(); err != nil {
			return nil
		}
	}
}

func (u *UI) dispatch(ctx context.Context, a action) error {
	switch a {
	case actionAdd:
		return u.add(ctx)
	case actionViewAll:
		return u.list(ctx, true)
	case actionViewUpcoming:
		return u.list(ctx, false)
	case actionNext:
		return u.next(ctx)
	case actionRemove:
		return u.remove(ctx)
	case actionMove:
		return u.move(ctx)
	case actionCategories:
		return u.categories(ctx)
	case actionExit:
		return nil
	default:
		return fmt.Errorf("ui: unknown action %d", a)
	}
}

func (u *UI) choose() (action, error) {
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "What would you like to do?",
		Items:     mainMenu,
		Templates: menuTemplates,
		Size:      len(mainMenu),
		Stdin:     u.Stdin,
		Stdout:    u.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return actionExit, err
	}
	return mainMenu[i].Action, nil
}

func (u *UI) add(ctx context.Context) error {
	name, err := u.text("Name", "", validateName)
	if err != nil {
		return err
	}
	date, err := u.askDate(u.svc.Today())
	if err != nil {
		return err
	}
	description, err := u.text("Description (optional)", "", nil)
	if err != nil {
		return err
	}
	cat, err := u.pickCategory(ctx, "Category", true)
	if err != nil {
		return err
	}

	e, err := u.svc.Add(ctx, name, date, description, cat)
	if err != nil {
		return err
	}
	u.printer().Message("✓ Added %q on %s.", e.Name, e.Date)
	return nil
}

func (u *UI) list(ctx context.Context, all bool) error {
	ds, err := u.svc.Dataset(ctx)
	if err != nil {
		return err
	}
	l, err := app.List(ds, app.Filter{All: all}, u.svc.Today())
	if err != nil {
		return err
	}

	pp := u.printer()
	if l.Len() == 0 {
		pp.None("No dates to show.")
		return nil
	}
	pp.UseCategories(app.Categories(ds)...)
	pp.TitleWithCount("Upcoming", len(l.Upcoming))
	pp.Items(l.Upcoming...)
	if all {
		pp.TitleWithCount("Past", len(l.Past))
		pp.Items(l.Past...)
	}
	return nil
}

func (u *UI) next(ctx context.Context) error {
	ds, err := u.svc.Dataset(ctx)
	if err != nil {
		return err
	}
	it, err := app.Next(ds, u.svc.Today())
	if errors.Is(err, app.ErrEmpty) {
		u.printer().None("No dates recorded yet.")
		return nil
	} else if err != nil {
		return err
	}

	pp := u.printer()
	pp.UseCategories(app.Categories(ds)...)
	pp.Next(it)
	return nil
}

func (u *UI) remove(ctx context.Context) error {
	name, err := u.pickEntry(ctx, "Date to remove")
	if err != nil || name == "" {
		return err
	}
	if ok, err := u.confirm(fmt.Sprintf("Remove %q", name)); err != nil || !ok {
		return err
	}

	e, err := u.svc.Remove(ctx, name)
	if err != nil {
		return err
	}
	u.printer().Message("✓ Removed %q.", e.Name)
	return nil
}

func (u *UI) move(ctx context.Context) error {
	name, err := u.pickEntry(ctx, "Date to move")
	if err != nil || name == "" {
		return err
	}
	cat, err := u.pickCategory(ctx, "Move to", true)
	if err != nil {
		return err
	}

	e, err := u.svc.Move(ctx, name, cat, true)
	if err != nil {
		return err
	}
	u.printer().Message("✓ Moved %q to %s.", e.Name, e.Category)
	return nil
}

func (u *UI) out() io.Writer {
	if u.Stdout != nil {
		return u.Stdout
	}
	return color.Output
}

func (u *UI) printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: u.out(), Today: u.svc.Today()}
}

func (u *UI) clear() {
	termenv.NewOutput(u.out()).ClearScreen()
}

func (u *UI) banner() {
	_, _ = fmt.Fprintln(u.out(), bannerStyle.Render("IMPORTANT DATES\n"+subtitleStyle.Render("keep track of the days that matter")))
}

func (u *UI) report(err error) {
	if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
		_, _ = color.New(color.FgYellow).Fprintln(u.out(), "Cancelled.")
		return
	}
	_, _ = color.New(color.Bold, color.FgRed).Fprintf(u.out(), "Error: %v\n", err)
}

func (u *UI) pause() error {
	prompt := promptui.Prompt{
		Label:       "Press enter to continue",
		HideEntered: true,
		Stdin:       u.Stdin,
		Stdout:      u.Stdout,
	}
	_, err := prompt.Run()
	return err
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func cancelled(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF)
}
