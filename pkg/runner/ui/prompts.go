package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/datekeeper/pkg/app"
	"tableflip.dev/datekeeper/pkg/category"
	"tableflip.dev/datekeeper/pkg/entry"
)

var textTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

type choice struct {
	Value string
	Label string
}

var choiceTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "➜  {{ .Label | bold | cyan }}",
	Inactive: "   {{ .Label }}",
	Selected: "{{ .Label | bold }}",
}

func (u *UI) text(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Validate:  validate,
		Templates: textTemplates,
		Stdin:     u.Stdin,
		Stdout:    u.Stdout,
	}
	s, err := prompt.Run()
	return strings.TrimSpace(s), err
}

func (u *UI) confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     u.Stdin,
		Stdout:    u.Stdout,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			_, _ = fmt.Fprintln(u.out(), "Cancelled.")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (u *UI) selectOne(label string, choices []choice) (string, error) {
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     choices,
		Templates: choiceTemplates,
		Size:      10,
		Searcher: func(input string, index int) bool {
			name := strings.Replace(strings.ToLower(choices[index].Label), " ", "", -1)
			input = strings.Replace(strings.ToLower(input), " ", "", -1)
			return strings.Contains(name, input)
		},
		Stdin:  u.Stdin,
		Stdout: u.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return choices[i].Value, nil
}

// pickEntry returns the chosen entry name, or "" when there are none.
func (u *UI) pickEntry(ctx context.Context, label string) (string, error) {
	ds, err := u.svc.Dataset(ctx)
	if err != nil {
		return "", err
	}
	if len(ds.Entries) == 0 {
		u.printer().None("No dates recorded yet.")
		return "", nil
	}
	ds.Sort()
	return u.selectOne(label, entryChoices(ds.Entries))
}

const newCategory = "\x00new"

// pickCategory selects an existing category, or a new name when allowNew is
// set.
func (u *UI) pickCategory(ctx context.Context, label string, allowNew bool) (string, error) {
	all, err := u.svc.Categories(ctx)
	if err != nil {
		return "", err
	}
	choices := categoryChoices(all)
	if allowNew {
		choices = append(choices, choice{Value: newCategory, Label: "New category..."})
	}
	picked, err := u.selectOne(label, choices)
	if err != nil || picked != newCategory {
		return picked, err
	}
	return u.text("Category name", "", validateName)
}

func (u *UI) pickColor(label string) (string, error) {
	choices := make([]choice, 0, len(category.AllColors())+1)
	for _, c := range category.AllColors() {
		choices = append(choices, choice{Value: c.String(), Label: c.String()})
	}
	choices = append(choices, choice{Value: "#", Label: "Hex value..."})
	picked, err := u.selectOne(label, choices)
	if err != nil || picked != "#" {
		return picked, err
	}
	return u.text("Hex color (#rrggbb)", "#", validateColor)
}

// categories is the manage categories submenu.
func (u *UI) categories(ctx context.Context) error {
	all, err := u.svc.Categories(ctx)
	if err != nil {
		return err
	}
	pp := u.printer()
	pp.Categories(all...)

	op, err := u.selectOne("Categories", []choice{
		{Value: "add", Label: "Add a category"},
		{Value: "recolor", Label: "Change a color"},
		{Value: "remove", Label: "Remove a category"},
		{Value: "back", Label: "Back"},
	})
	if err != nil {
		return err
	}

	switch op {
	case "add":
		name, err := u.text("Category name", "", validateName)
		if err != nil {
			return err
		}
		c, err := u.pickColor("Color")
		if err != nil {
			return err
		}
		added, err := u.svc.AddCategory(ctx, name, c)
		if err != nil {
			return err
		}
		pp.Message("✓ Added category %s.", added.Name)
	case "recolor":
		name, err := u.pickCategory(ctx, "Category", false)
		if err != nil {
			return err
		}
		c, err := u.pickColor("New color")
		if err != nil {
			return err
		}
		changed, err := u.svc.RecolorCategory(ctx, name, c)
		if err != nil {
			return err
		}
		pp.Message("✓ %s is now %s.", changed.Name, changed.Color)
	case "remove":
		name, err := u.pickCategory(ctx, "Category to remove", false)
		if err != nil {
			return err
		}
		moveTo := ""
		if inUse(all, name) {
			others := make([]app.CategorySummary, 0, len(all))
			for _, c := range all {
				if c.Name != name {
					others = append(others, c)
				}
			}
			if moveTo, err = u.selectOne("Move its dates to", categoryChoices(others)); err != nil {
				return err
			}
		}
		if ok, err := u.confirm(fmt.Sprintf("Remove category %q", name)); err != nil || !ok {
			return err
		}
		moved, err := u.svc.RemoveCategory(ctx, name, moveTo)
		if err != nil {
			return err
		}
		pp.Message("✓ Removed %s, %d dates moved.", name, moved)
	}
	return nil
}

func entryChoices(entries []entry.Entry) []choice {
	choices := make([]choice, 0, len(entries))
	for i, e := range entries {
		choices = append(choices, choice{
			Value: e.Name,
			Label: fmt.Sprintf("%d) %s (%s)", i+1, e.Name, e.Date),
		})
	}
	return choices
}

func categoryChoices(all []app.CategorySummary) []choice {
	choices := make([]choice, 0, len(all))
	for _, c := range all {
		label := c.Name
		if c.Entries == 1 {
			label += " (1 date)"
		} else {
			label += fmt.Sprintf(" (%d dates)", c.Entries)
		}
		choices = append(choices, choice{Value: c.Name, Label: label})
	}
	return choices
}

func inUse(all []app.CategorySummary, name string) bool {
	for _, c := range all {
		if c.Name == name {
			return c.Entries > 0
		}
	}
	return false
}

func validateName(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("name can not be empty")
	}
	return nil
}

func validateDate(input string) error {
	_, err := entry.ParseDate(strings.TrimSpace(input))
	return err
}

func validateColor(input string) error {
	_, err := category.ParseColor(input)
	return err
}
