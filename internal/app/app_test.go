package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/router"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/screens/create"
	"github.com/dakia/mathquiz/internal/screens/home"
	"github.com/dakia/mathquiz/internal/session"
)

func testModel() AppModel {
	return newAppModel(screens.Deps{Session: session.NewController(), L: i18n.New("en")})
}

// drive feeds msg through the model and then any navigation message the
// resulting command produces.
func drive(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func TestEscAbandonsFlow(t *testing.T) {
	m := testModel()
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if _, ok := m.router.Active().(*create.ManualScreen); !ok {
		t.Fatalf("expected manual creator, got %T", m.router.Active())
	}
	if m.deps.Session.Mode() != session.ModeCreatingManually {
		t.Fatalf("mode = %s", m.deps.Session.Mode())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home, got %T", m.router.Active())
	}
	if m.deps.Session.Mode() != session.ModeHome {
		t.Errorf("mode = %s, want home", m.deps.Session.Mode())
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on home should do nothing")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := testModel()
	if m.render() != "" {
		t.Error("expected empty view before the first resize")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(AppModel)
	if out := m.render(); !strings.Contains(out, i18n.AppName) || !strings.Contains(out, i18n.AIDisabledBadge) {
		t.Error("expected header with app name and AI status")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(AppModel)
	if out := m.render(); !strings.Contains(out, "Terminal too small!") {
		t.Error("expected size warning")
	}
}

func TestFooterHints(t *testing.T) {
	m := testModel()
	hints := m.footerHints(m.router.Active())
	if len(hints) == 0 || hints[len(hints)-1].Key != "Ctrl+C" {
		t.Errorf("unexpected home hints %+v", hints)
	}
	if got := m.footerHints(nil); len(got) != 3 {
		t.Errorf("fallback hints = %+v", got)
	}
}
