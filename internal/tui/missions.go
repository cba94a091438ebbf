package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/cryptodet/internal/game"
	"github.com/verte-zerg/cryptodet/internal/logger"
	"github.com/verte-zerg/cryptodet/internal/model"
)

type missionsTab struct {
	list      []game.Mission
	cursor    int
	challenge *game.Challenge
	hintShown bool
	answer    textinput.Model
	status    string
	statusOK  bool
}

func newMissionsTab() missionsTab {
	return missionsTab{
		list:   game.Missions(),
		answer: newInput("Ответ: ", "расшифрованный текст"),
	}
}

func (t *missionsTab) abandon() {
	t.challenge = nil
	t.hintShown = false
	t.answer.Reset()
	t.answer.Blur()
}

func (m *Model) updateMissions(msg tea.KeyMsg) tea.Cmd {
	t := &m.missions
	if t.challenge == nil {
		switch {
		case key.Matches(msg, m.keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if t.cursor < len(t.list)-1 {
				t.cursor++
			}
		case key.Matches(msg, m.keys.Submit):
			return m.startMission(t.list[t.cursor])
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		t.abandon()
		t.status = ""
		return nil
	case key.Matches(msg, m.keys.Hint):
		if !t.hintShown {
			t.hintShown = true
			m.session.UseHint()
			logger.L().Info("mission.hint", zap.String("session", m.session.ID), zap.Int("mission", t.challenge.Mission.ID))
		}
		return nil
	case key.Matches(msg, m.keys.Submit):
		m.submitAnswer()
		return nil
	}
	var cmd tea.Cmd
	t.answer, cmd = t.answer.Update(msg)
	return cmd
}

func (m *Model) startMission(mission game.Mission) tea.Cmd {
	t := &m.missions
	if m.session.IsCompleted(mission.ID) {
		t.status = "Миссия уже завершена."
		t.statusOK = true
		return nil
	}
	c, err := m.gen.Generate(mission, m.alphabet)
	if err != nil {
		t.status = fmt.Sprintf("Не удалось начать миссию: %v", err)
		t.statusOK = false
		logger.L().Error("mission.start_failed", zap.Int("mission", mission.ID), zap.Error(err))
		return nil
	}
	m.session.Begin()
	t.challenge = &c
	t.hintShown = false
	t.status = ""
	t.answer.Reset()
	logger.L().Info("mission.started",
		zap.String("session", m.session.ID),
		zap.Int("mission", mission.ID),
		zap.String("kind", mission.Kind),
		zap.String("alphabet", m.alphabet.Code()),
	)
	return t.answer.Focus()
}

func (m *Model) submitAnswer() {
	t := &m.missions
	answer := t.answer.Value()
	if strings.TrimSpace(answer) == "" {
		return
	}
	c := t.challenge
	correct := c.Check(answer)
	m.recordAttempt(c.Mission, correct, t.hintShown)
	if !correct {
		t.status = "Неверно! Попробуйте еще раз."
		t.statusOK = false
		return
	}
	if m.session.CompleteMission(c.Mission.ID, c.Mission.Points) {
		logger.L().Info("mission.completed",
			zap.String("session", m.session.ID),
			zap.Int("mission", c.Mission.ID),
			zap.Int("score", m.session.Score),
			zap.Int("level", m.session.Level),
		)
	}
	t.abandon()
	t.status = fmt.Sprintf("Верно! Миссия выполнена! +%d очков", c.Mission.Points)
	t.statusOK = true
}

func (m *Model) recordAttempt(mission game.Mission, correct, hint bool) {
	if m.store == nil {
		return
	}
	_, err := m.store.InsertAttempt(context.Background(), model.Attempt{
		SessionID: m.session.ID,
		MissionID: mission.ID,
		Kind:      mission.Kind,
		Correct:   correct,
		HintShown: hint,
		CreatedAt: m.now(),
	})
	if err != nil {
		logger.L().Error("journal.insert_failed", zap.Error(err))
	}
}

func (t *missionsTab) view(s *game.Session, width int) string {
	var sections []string
	if t.challenge != nil {
		sections = append(sections, t.challengeView(width))
	} else {
		sections = append(sections, lipgloss.NewStyle().Bold(true).Render("Сюжетные миссии"))
		for i, mission := range t.list {
			sections = append(sections, missionCard(mission, s.IsCompleted(mission.ID), i == t.cursor, width))
		}
	}
	if t.status != "" {
		style := errorStyle
		if t.statusOK {
			style = successStyle
		}
		sections = append(sections, style.Render(t.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (t *missionsTab) challengeView(width int) string {
	c := t.challenge
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Миссия %d: %s", c.Mission.ID, c.Mission.Title)),
		"",
		"Зашифрованное сообщение:",
		cipherStyle.Render(wrapText(c.Ciphertext, width)),
		"",
	}
	if t.hintShown {
		lines = append(lines, "Подсказка: "+c.Hint())
	} else {
		lines = append(lines, mutedStyle.Render("Подсказка скрыта (ctrl+t)"))
	}
	lines = append(lines, "", t.answer.View())
	return strings.Join(lines, "\n")
}

func missionCard(mission game.Mission, completed, selected bool, width int) string {
	status := mutedStyle.Render("enter: начать")
	if completed {
		status = successStyle.Render("✓ Завершено")
	}
	lines := []string{
		cardValueStyle.Render(fmt.Sprintf("Миссия %d: %s", mission.ID, mission.Title)),
		wrapText(mission.Description, maxInt(10, width-4)),
		cardTitleStyle.Render(fmt.Sprintf("Сложность: %s | Награда: %d очков", mission.Difficulty, mission.Points)),
		status,
	}
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
