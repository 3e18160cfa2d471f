package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/officepro/officepro/internal/controller"
)

// pane is one tab of the browser.
type pane interface {
	title() string
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view(width, height int) string
	// capturing reports whether the pane wants all key input (a form
	// or confirmation is open), so the root model keeps tab switching
	// out of the way.
	capturing() bool
}

type paneMode int

const (
	modeList paneMode = iota
	modeForm
	modeConfirm
)

// formField pairs a draft field definition with its input widget.
type formField struct {
	input     textinput.Model
	options   []controller.Option
	def       controller.FieldDef
	optionIdx int
}

// resourcePane drives one CRUD controller: the record table, the
// create/edit form, and the delete confirmation.
type resourcePane[R controller.Record, D any] struct {
	ctrl     *controller.Controller[R, D]
	row      func(R) []string
	name     string
	singular string
	columns  []string
	form     []formField
	theme    Theme
	keys     KeyMap
	mode     paneMode
	cursor   int
	focus    int
}

func newResourcePane[R controller.Record, D any](
	name, singular string,
	ctrl *controller.Controller[R, D],
	columns []string,
	row func(R) []string,
	theme Theme,
	keys KeyMap,
) *resourcePane[R, D] {
	return &resourcePane[R, D]{
		ctrl:     ctrl,
		name:     name,
		singular: singular,
		columns:  columns,
		row:      row,
		theme:    theme,
		keys:     keys,
	}
}

func (p *resourcePane[R, D]) title() string { return p.name }

func (p *resourcePane[R, D]) init() tea.Cmd {
	return effectCmd(p.ctrl.Load())
}

func (p *resourcePane[R, D]) capturing() bool { return p.mode != modeList }

func (p *resourcePane[R, D]) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch p.mode {
		case modeForm:
			return p.updateForm(keyMsg)
		case modeConfirm:
			return p.updateConfirm(keyMsg)
		default:
			return p.updateList(keyMsg)
		}
	}

	if m, ok := msg.(controller.Msg); ok && p.ctrl.Apply(m) {
		p.clampCursor()
		// The controller closes the form and clears the pending
		// delete on success; follow its state.
		if p.mode == modeForm && !p.ctrl.FormVisible() {
			p.mode = modeList
			p.form = nil
		}
		if p.mode == modeConfirm && p.ctrl.PendingDelete() == nil {
			p.mode = modeList
		}
	}
	return nil
}

func (p *resourcePane[R, D]) updateList(msg tea.KeyMsg) tea.Cmd {
	records := p.ctrl.Records()
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(records)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Add):
		p.ctrl.StartCreate()
		p.openForm()
	case key.Matches(msg, p.keys.Edit):
		if p.cursor < len(records) {
			p.ctrl.StartEdit(records[p.cursor])
			p.openForm()
		}
	case key.Matches(msg, p.keys.Delete):
		if p.cursor < len(records) {
			p.ctrl.RequestDelete(records[p.cursor])
			p.mode = modeConfirm
		}
	case key.Matches(msg, p.keys.Refresh):
		return effectCmd(p.ctrl.Refresh())
	}
	return nil
}

func (p *resourcePane[R, D]) openForm() {
	editing := p.ctrl.EditingID() != ""
	fields := make([]formField, 0, len(p.ctrl.Fields()))
	for _, def := range p.ctrl.Fields() {
		if def.CreateOnly && editing {
			continue
		}
		f := formField{def: def}
		switch def.Kind {
		case controller.FieldSelect:
			if def.Options != nil {
				f.options = def.Options()
			}
			current := p.ctrl.FieldValue(def.Key)
			for i, opt := range f.options {
				if opt.Value == current {
					f.optionIdx = i
					break
				}
			}
		default:
			input := textinput.New()
			input.SetValue(p.ctrl.FieldValue(def.Key))
			if def.Kind == controller.FieldSecret {
				input.EchoMode = textinput.EchoPassword
			}
			f.input = input
		}
		fields = append(fields, f)
	}
	p.form = fields
	p.focus = 0
	p.mode = modeForm
	p.focusField(0)
}

func (p *resourcePane[R, D]) focusField(idx int) {
	for i := range p.form {
		if p.form[i].def.Kind == controller.FieldSelect {
			continue
		}
		if i == idx {
			p.form[i].input.Focus()
		} else {
			p.form[i].input.Blur()
		}
	}
	p.focus = idx
}

func (p *resourcePane[R, D]) updateForm(msg tea.KeyMsg) tea.Cmd {
	field := &p.form[p.focus]
	isSelect := field.def.Kind == controller.FieldSelect

	switch {
	case key.Matches(msg, p.keys.Cancel):
		p.ctrl.CloseForm()
		p.mode = modeList
		p.form = nil
		return nil
	case key.Matches(msg, p.keys.Submit):
		return effectCmd(p.ctrl.Submit())
	case key.Matches(msg, p.keys.NextField):
		p.focusField((p.focus + 1) % len(p.form))
		return nil
	case key.Matches(msg, p.keys.PrevField):
		p.focusField((p.focus + len(p.form) - 1) % len(p.form))
		return nil
	case isSelect && key.Matches(msg, p.keys.PrevOpt):
		p.cycleOption(field, -1)
		return nil
	case isSelect && key.Matches(msg, p.keys.NextOpt):
		p.cycleOption(field, 1)
		return nil
	}

	if !isSelect {
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)
		p.ctrl.SetFieldValue(field.def.Key, field.input.Value())
		return cmd
	}
	return nil
}

func (p *resourcePane[R, D]) cycleOption(field *formField, delta int) {
	if len(field.options) == 0 {
		return
	}
	field.optionIdx = (field.optionIdx + delta + len(field.options)) % len(field.options)
	p.ctrl.SetFieldValue(field.def.Key, field.options[field.optionIdx].Value)
}

func (p *resourcePane[R, D]) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Submit), msg.String() == "y":
		return effectCmd(p.ctrl.ConfirmDelete())
	case key.Matches(msg, p.keys.Cancel), msg.String() == "n":
		p.ctrl.CancelDelete()
		p.mode = modeList
	}
	return nil
}

func (p *resourcePane[R, D]) clampCursor() {
	if n := len(p.ctrl.Records()); p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *resourcePane[R, D]) view(width, _ int) string {
	var b strings.Builder

	switch p.mode {
	case modeForm:
		b.WriteString(p.viewForm())
	case modeConfirm:
		b.WriteString(p.viewConfirm())
	default:
		b.WriteString(p.viewList(width))
	}
	return b.String()
}

func (p *resourcePane[R, D]) viewList(_ int) string {
	var b strings.Builder
	records := p.ctrl.Records()

	if msg := p.ctrl.ErrorMessage(); msg != "" {
		b.WriteString(p.theme.Error.Render(msg) + "\n")
	}
	if p.ctrl.Loading() {
		b.WriteString(p.theme.Muted.Render("Loading…") + "\n")
	}
	if len(records) == 0 {
		b.WriteString(p.theme.Muted.Render("No records. Press 'a' to add one.") + "\n")
		return b.String()
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = p.row(r)
	}
	widths := columnWidths(p.columns, rows)

	b.WriteString(p.theme.Header.Render(formatRow(p.columns, widths)) + "\n")
	for i, row := range rows {
		line := formatRow(row, widths)
		if i == p.cursor {
			line = p.theme.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + p.theme.Muted.Render("a add · e edit · d delete · r refresh"))
	return b.String()
}

func (p *resourcePane[R, D]) viewForm() string {
	var b strings.Builder
	if p.ctrl.EditingID() != "" {
		b.WriteString(p.theme.Title.Render("Edit "+p.singular) + "\n\n")
	} else {
		b.WriteString(p.theme.Title.Render("New "+p.singular) + "\n\n")
	}
	if msg := p.ctrl.ErrorMessage(); msg != "" {
		b.WriteString(p.theme.Error.Render(msg) + "\n\n")
	}

	errs := p.ctrl.FieldErrors()
	for i, f := range p.form {
		label := f.def.Label
		if i == p.focus {
			label = p.theme.FieldLabel.Render("▸ " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n")

		if f.def.Kind == controller.FieldSelect {
			selected := "(none)"
			if len(f.options) > 0 {
				selected = f.options[f.optionIdx].Label
			}
			b.WriteString(fmt.Sprintf("    ◀ %s ▶\n", selected))
		} else {
			b.WriteString("    " + f.input.View() + "\n")
		}
		if p.ctrl.Touched() {
			if v, ok := errs[f.def.Key]; ok {
				b.WriteString("    " + p.theme.FieldError.Render(v.Message) + "\n")
			}
		}
	}
	b.WriteString("\n" + p.theme.Muted.Render("enter save · tab next field · esc cancel"))
	return p.theme.Box.Render(b.String())
}

func (p *resourcePane[R, D]) viewConfirm() string {
	var b strings.Builder
	if msg := p.ctrl.ErrorMessage(); msg != "" {
		b.WriteString(p.theme.Error.Render(msg) + "\n\n")
	}
	label := ""
	if rec := p.ctrl.PendingDelete(); rec != nil {
		label = p.row(*rec)[0]
	}
	b.WriteString(fmt.Sprintf("Delete %q?\n\n", label))
	b.WriteString(p.theme.Muted.Render("y/enter confirm · n/esc cancel"))
	return p.theme.Box.Render(b.String())
}

func columnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len([]rune(c))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}
	const maxWidth = 32
	for i := range widths {
		if widths[i] > maxWidth {
			widths[i] = maxWidth
		}
	}
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		runes := []rune(cell)
		if len(runes) > widths[i] {
			cell = string(runes[:widths[i]-1]) + "…"
		}
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.Join(parts, "  ")
}
