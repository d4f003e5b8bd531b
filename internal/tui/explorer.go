// Package tui provides the interactive Bubble Tea explorer for coopcost.
package tui

import (
	"errors"
	"maps"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/pipeline"
)

type view int

const (
	viewScenarios view = iota
	viewSummary
)

var viewNames = []string{"Scenarios", "Summary"}

const (
	minTerminalWidth = 60
	sidebarWidth     = 40
)

// Explorer is the root Bubble Tea model: a variable list on the left and
// the recomputed costs on the right.
type Explorer struct {
	src     pipeline.Source
	vars    model.VariableSet
	vals    model.Values
	initial model.Values

	cursor int
	view   view

	// Recomputed on every change
	recs      model.Records
	costs     model.Amounts
	sweep     []float64
	sweepMark int
	err       error

	width  int
	height int
	keys   keyMap
	help   help.Model
}

// New returns an explorer starting from held, resolved against src's
// variables.
func New(src pipeline.Source, held model.Values) (Explorer, error) {
	vars := src.Variables()
	if len(vars) == 0 {
		return Explorer{}, errors.New("no variables to explore")
	}
	vals, err := vars.Resolve(held)
	if err != nil {
		return Explorer{}, err
	}

	e := Explorer{
		src:     src,
		vars:    vars,
		vals:    vals,
		initial: maps.Clone(vals),
		keys:    defaultKeys(),
		help:    help.New(),
		width:   100,
	}
	e.recompute()
	return e, nil
}

// Values returns the current settings.
func (e Explorer) Values() model.Values {
	return maps.Clone(e.vals)
}

// Init implements tea.Model.
func (e Explorer) Init() tea.Cmd {
	return nil
}

func (e *Explorer) recompute() {
	recs, err := pipeline.AggregateWith(e.src.Scenarios, e.vars, e.vals)
	if err != nil {
		e.err = err
		return
	}
	costs, err := pipeline.Summarize(e.src.Monthly, e.vars, e.vals)
	if err != nil {
		e.err = err
		return
	}

	active := e.vars[e.cursor]
	seq, err := pipeline.Sweep(e.src.Monthly, e.vars, active.Name, e.vals)
	if err != nil {
		e.err = err
		return
	}
	var sweep []float64
	mark := -1
	for p, err := range seq {
		if err != nil {
			e.err = err
			return
		}
		if p.Value.Equal(e.vals[active.Name]) {
			mark = len(sweep)
		}
		sweep = append(sweep, p.Total)
	}

	e.recs, e.costs, e.sweep, e.sweepMark, e.err = recs, costs, sweep, mark, nil
}

func (e *Explorer) step(delta int) {
	v := e.vars[e.cursor]
	next := v.Domain.Advance(e.vals[v.Name], delta)
	if next.Equal(e.vals[v.Name]) {
		return
	}
	e.vals = e.vals.With(v.Name, next)
	e.recompute()
}

// Update implements tea.Model.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.help.Width = msg.Width
		return e, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, e.keys.Quit):
			return e, tea.Quit
		case key.Matches(msg, e.keys.Help):
			e.help.ShowAll = !e.help.ShowAll
		case key.Matches(msg, e.keys.Up):
			if e.cursor > 0 {
				e.cursor--
				e.recompute()
			}
		case key.Matches(msg, e.keys.Down):
			if e.cursor < len(e.vars)-1 {
				e.cursor++
				e.recompute()
			}
		case key.Matches(msg, e.keys.Left):
			e.step(-1)
		case key.Matches(msg, e.keys.Right):
			e.step(1)
		case key.Matches(msg, e.keys.BigLeft):
			e.step(-bigStep)
		case key.Matches(msg, e.keys.BigRight):
			e.step(bigStep)
		case key.Matches(msg, e.keys.View):
			e.view = (e.view + 1) % view(len(viewNames))
		case key.Matches(msg, e.keys.Reset):
			e.vals = maps.Clone(e.initial)
			e.recompute()
		}
		return e, nil
	}
	return e, nil
}
