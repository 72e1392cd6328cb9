package create

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/questiongen"
	"github.com/dakia/mathquiz/internal/quiz"
	"github.com/dakia/mathquiz/internal/screen"
	"github.com/dakia/mathquiz/internal/screens"
	"github.com/dakia/mathquiz/internal/ui/components"
	"github.com/dakia/mathquiz/internal/ui/layout"
	"github.com/dakia/mathquiz/internal/ui/theme"
	"github.com/dakia/mathquiz/internal/uploads"
)

const (
	upFocusGrade = iota
	upFocusPath
	upFocusNote
	upFocusCreate
	upFieldCount
)

// UploadScreen creates a quiz from an image of course material.
type UploadScreen struct {
	flow
	path   components.TextInput
	note   components.TextInput
	button components.Button
	focus  int
}

var _ screen.Screen = (*UploadScreen)(nil)
var _ screen.KeyHintProvider = (*UploadScreen)(nil)

// NewUpload creates the image creator.
func NewUpload(deps screens.Deps) *UploadScreen {
	s := &UploadScreen{flow: newFlow(deps)}
	l := s.deps.L
	s.path = components.NewTextInput(l.T(i18n.FieldImageHint), 0, 50)
	s.note = components.NewTextInput(l.T(i18n.FieldNoteHint), 300, 50)
	s.button = components.NewButton(l.T(i18n.ButtonCreate))
	s.setFocus(upFocusGrade)
	return s
}

func (s *UploadScreen) Init() tea.Cmd {
	return nil
}

func (s *UploadScreen) Title() string {
	return s.deps.L.T(i18n.ScreenUpload)
}

func (s *UploadScreen) KeyHints() []layout.KeyHint {
	l := s.deps.L
	return []layout.KeyHint{
		{Key: "Tab", Description: l.T(i18n.KeyNext)},
		{Key: "Enter", Description: l.T(i18n.ButtonCreate)},
		{Key: "Esc", Description: l.T(i18n.KeyBack)},
	}
}

func (s *UploadScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.grade.Focused = i == upFocusGrade
	s.button.Focused = i == upFocusCreate
	s.path.Blur()
	s.note.Blur()
	switch i {
	case upFocusPath:
		return s.path.Focus()
	case upFocusNote:
		return s.note.Focus()
	}
	return nil
}

func (s *UploadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if !s.current(msg) {
			return s, nil
		}
		return s, s.finish(msg)

	case spinner.TickMsg:
		return s, s.tick(msg)

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus(moveFocus(s.focus, 1, upFieldCount))
		case "shift+tab", "up":
			return s, s.setFocus(moveFocus(s.focus, -1, upFieldCount))
		case "enter":
			if s.focus == upFocusCreate {
				return s, s.submit()
			}
			return s, s.setFocus(s.focus + 1)
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case upFocusGrade:
		s.grade, cmd = s.grade.Update(msg)
	case upFocusPath:
		s.path, cmd = s.path.Update(msg)
	case upFocusNote:
		s.note, cmd = s.note.Update(msg)
	}
	return s, cmd
}

// submit loads, archives and sends the image inside one command.
func (s *UploadScreen) submit() tea.Cmd {
	path := strings.TrimSpace(s.path.Value())
	if path == "" {
		s.fail(questiongen.ErrNoImage)
		return nil
	}
	if !s.deps.AIAvailable() {
		s.fail(screens.ErrAIUnavailable)
		return nil
	}

	note := strings.TrimSpace(s.note.Value())
	if note == "" {
		note = s.deps.L.T(i18n.DefaultImageNote)
	}

	gen := s.deps.Generator
	archive := s.deps.Archive
	logger := s.deps.Logger
	title := s.deps.L.T(i18n.TitleImage)
	return s.begin(title, quiz.SourceImage, func(ctx context.Context) ([]quiz.Question, error) {
		img, err := questiongen.LoadImage(path)
		if err != nil {
			return nil, err
		}
		archiveImage(ctx, archive, img, logger)
		return gen.FromImage(ctx, img, note)
	})
}

// archiveImage stores a copy of img. Failures are logged only.
func archiveImage(ctx context.Context, a uploads.Archive, img questiongen.Image, logger *zap.Logger) {
	key := uploads.Key(time.Now(), img.Ext())
	loc, err := a.Put(ctx, key, img.Data, img.MIMEType)
	if err != nil {
		logger.Warn("failed to archive upload", zap.String("key", key), zap.Error(err))
		return
	}
	if loc != "" {
		logger.Info("upload archived",
			zap.String("name", img.Name),
			zap.String("location", loc),
			zap.Int("bytes", len(img.Data)),
		)
	}
}

func (s *UploadScreen) View(width, height int) string {
	l := s.deps.L
	cw := components.ContentWidth(width)

	body := theme.Title.Width(cw-4).Render(s.Title()) + "\n\n" +
		field(l.T(i18n.FieldGrade), s.grade.View(l)) + "\n\n" +
		field(l.T(i18n.FieldImagePath), s.path.View()) + "\n\n" +
		field(l.T(i18n.FieldNote), s.note.View()) + "\n\n" +
		s.button.View()
	if status := s.statusView(l.T(i18n.Analyzing)); status != "" {
		body += "\n\n" + status
	}
	return components.CabinetFrame(components.Card(body, cw), width, height)
}
