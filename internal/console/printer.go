package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

var modeTitles = map[engine.Mode]string{
	engine.ModeFearless:   "Fearless Draft",
	engine.ModeTournament: "Tournament Draft",
	engine.ModeRandom:     "Random Draft (ARAM style)",
}

var phaseTitles = map[engine.Phase]string{
	engine.PhaseBan1:  "Ban Phase 1",
	engine.PhasePick1: "Pick Phase 1",
	engine.PhaseBan2:  "Ban Phase 2",
	engine.PhasePick2: "Pick Phase 2",
	engine.PhaseOffer: "Offers",
}

// Printer renders draft events for a terminal. Colors are only emitted when
// w is a terminal that supports them.
type Printer struct {
	w      io.Writer
	header lipgloss.Style
	ban    lipgloss.Style
	pick   lipgloss.Style
	warn   lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ban:    r.NewStyle().Foreground(lipgloss.Color("9")),
		pick:   r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func (p *Printer) Announce(e engine.Event) {
	switch e.Type {
	case engine.EvtPhaseStarted:
		title := fmt.Sprintf("--- %s: %s ---", modeTitles[e.Mode], phaseTitles[e.Phase])
		if e.Game > 1 {
			title = fmt.Sprintf("--- Game %d · %s: %s ---", e.Game, modeTitles[e.Mode], phaseTitles[e.Phase])
		}
		p.line("\n" + p.header.Render(title))
	case engine.EvtChampionBanned:
		p.line(p.ban.Render(fmt.Sprintf("%s bans %s", e.Side, e.Champion)))
	case engine.EvtChampionPicked:
		p.line(p.pick.Render(fmt.Sprintf("%s picks %s", e.Side, e.Champion)))
	case engine.EvtChoiceOffered:
		p.line(fmt.Sprintf("\n%s, your options: %s", e.Side, strings.Join(e.Options, ", ")))
	case engine.EvtSelectionRejected:
		p.line(p.warn.Render(fmt.Sprintf("Rejected: %s. Try again.", e.Reason)))
	case engine.EvtDraftCompleted:
		p.summary(e)
	}
}

func (p *Printer) summary(e engine.Event) {
	p.line("\n" + p.header.Render(modeTitles[e.Mode]+" complete!"))
	if e.Result == nil {
		return
	}
	for _, team := range []engine.Team{engine.TeamBlue, engine.TeamRed} {
		p.line(fmt.Sprintf("%s: %s", e.Result.Sides[team], strings.Join(e.Result.Picks[team], ", ")))
		if bans := e.Result.Bans[team]; len(bans) > 0 {
			p.line(fmt.Sprintf("  bans: %s", strings.Join(bans, ", ")))
		}
	}
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}
