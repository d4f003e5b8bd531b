package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/coopcost/internal/config"
	"github.com/theirongolddev/coopcost/internal/coop"
	"github.com/theirongolddev/coopcost/internal/model"
)

func newTestExplorer(t *testing.T) Explorer {
	t.Helper()
	e, err := New(coop.New(coop.RateOverrides{}), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func press(t *testing.T, e Explorer, msgs ...tea.KeyMsg) Explorer {
	t.Helper()
	for _, m := range msgs {
		next, _ := e.Update(m)
		e = next.(Explorer)
	}
	return e
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStepValue(t *testing.T) {
	e := newTestExplorer(t)
	before := e.costs.Total()

	e = press(t, e, tea.KeyMsg{Type: tea.KeyRight})
	if got := e.vals[coop.SalePrice].Float(); got != 775_000 {
		t.Fatalf("sale price = %v, want 775000", got)
	}
	if e.costs.Total() <= before {
		t.Error("raising the price should raise monthly cost")
	}

	e = press(t, e, runes("H"))
	if got := e.vals[coop.SalePrice].Float(); got != 525_000 {
		t.Errorf("sale price after big step = %v, want 525000", got)
	}
}

func TestStepClamps(t *testing.T) {
	e, err := New(coop.New(coop.RateOverrides{}), model.Values{coop.SalePrice: model.Num(100_000)})
	if err != nil {
		t.Fatal(err)
	}
	e = press(t, e, tea.KeyMsg{Type: tea.KeyLeft})
	if got := e.vals[coop.SalePrice].Float(); got != 100_000 {
		t.Errorf("sale price = %v, want clamp at 100000", got)
	}
}

func TestCursorAndSweep(t *testing.T) {
	e := newTestExplorer(t)
	if len(e.sweep) != 77 {
		t.Fatalf("sale price sweep has %d points, want 77", len(e.sweep))
	}

	e = press(t, e, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if e.cursor != 2 || len(e.sweep) != 12 || e.sweepMark != 5 {
		t.Errorf("cursor=%d sweep=%d mark=%d, want 2, 12, 5", e.cursor, len(e.sweep), e.sweepMark)
	}

	e = press(t, e, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if e.cursor != 0 {
		t.Errorf("cursor = %d, want 0", e.cursor)
	}
}

func TestChoiceStep(t *testing.T) {
	e := newTestExplorer(t)
	last := len(e.vars) - 1
	for range last {
		e = press(t, e, runes("j"))
	}
	e = press(t, e, runes("l"))
	if got := e.vals[coop.DownPayment]; !got.Equal(model.Num(0.35)) {
		t.Errorf("down payment = %v, want 0.35", got)
	}
}

func TestResetAndView(t *testing.T) {
	e := newTestExplorer(t)
	e = press(t, e, tea.KeyMsg{Type: tea.KeyRight}, runes("r"))
	if got := e.vals[coop.SalePrice].Float(); got != 750_000 {
		t.Errorf("sale price after reset = %v", got)
	}

	if !strings.Contains(e.View(), coop.ScenarioLandTrust) {
		t.Error("scenario view should list scenarios")
	}
	e = press(t, e, tea.KeyMsg{Type: tea.KeyTab})
	if e.view != viewSummary {
		t.Fatalf("view = %d, want summary", e.view)
	}
	if !strings.Contains(e.View(), "mortgage") {
		t.Error("summary view should list categories")
	}
	e = press(t, e, tea.KeyMsg{Type: tea.KeyTab})
	if e.view != viewScenarios {
		t.Error("tab should cycle back to scenarios")
	}
}

func TestQuit(t *testing.T) {
	e := newTestExplorer(t)
	_, cmd := e.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestNarrowTerminal(t *testing.T) {
	e := newTestExplorer(t)
	next, _ := e.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(next.(Explorer).View(), "too narrow") {
		t.Error("expected narrow terminal notice")
	}
}

func TestSetupValues(t *testing.T) {
	vars := coop.Variables()
	cfg := config.DefaultConfig()

	sv := NewSetupValues(cfg, vars, vars.Defaults())
	if sv.Settings[4] != "20%" || sv.Settings[2] != "6" {
		t.Fatalf("settings = %v", sv.Settings)
	}

	sv.Settings[2] = "4"
	sv.Settings[4] = "35%"
	sv.Theme = "terminal"
	if err := sv.Apply(&cfg, vars); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" || cfg.Values[coop.Bedrooms] != 4.0 || cfg.Values[coop.DownPayment] != 0.35 {
		t.Errorf("cfg = %+v", cfg)
	}

	sv.Settings[2] = "40"
	if err := sv.Apply(&cfg, vars); err == nil {
		t.Error("expected out-of-domain error")
	}

	if NewSetupForm(&sv, vars) == nil {
		t.Error("NewSetupForm returned nil")
	}
}
