package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/jokerpoker/poker"
)

// DisplayStyles contains styling for game display
type DisplayStyles struct {
	Header    lipgloss.Style
	Player    lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Joker     lipgloss.Style
	Category  lipgloss.Style
	Winner    lipgloss.Style
	Notice    lipgloss.Style
}

// NewDisplayStyles creates the styles for a renderer
func NewDisplayStyles(r *lipgloss.Renderer) *DisplayStyles {
	return &DisplayStyles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Player: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Joker: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Italic(true),
		Category: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Notice: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// HandDisplay prints hands and results to a writer
type HandDisplay struct {
	w      io.Writer
	styles *DisplayStyles
}

// NewHandDisplay creates a display for w. With color disabled all output is plain text.
func NewHandDisplay(w io.Writer, color bool) *HandDisplay {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &HandDisplay{w: w, styles: NewDisplayStyles(r)}
}

// RenderCard renders a single card with its suit colour
func (hd *HandDisplay) RenderCard(c poker.Card) string {
	switch {
	case c.IsJoker():
		return hd.styles.Joker.Render(c.String())
	case c.Suit().IsRed():
		return hd.styles.CardRed.Render(c.String())
	default:
		return hd.styles.CardBlack.Render(c.String())
	}
}

// RenderHand renders cards as "[A♠ 10♦ Joker]"
func (hd *HandDisplay) RenderHand(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = hd.RenderCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ShowHeader prints a section title
func (hd *HandDisplay) ShowHeader(title string) {
	fmt.Fprintln(hd.w, hd.styles.Header.Render(title))
}

// ShowNotice prints a dimmed line
func (hd *HandDisplay) ShowNotice(msg string) {
	fmt.Fprintln(hd.w, hd.styles.Notice.Render(msg))
}

// ShowHands prints every seated player's hand, one per line
func (hd *HandDisplay) ShowHands(g *Game) {
	for _, p := range g.Players() {
		fmt.Fprintf(hd.w, "%s: %s\n", hd.styles.Player.Render(p.Name), hd.RenderHand(p.Hand()))
	}
}

// ShowEvaluation prints a hand and what it evaluated to
func (hd *HandDisplay) ShowEvaluation(cards []poker.Card, eval poker.EvaluatedHand) {
	line := fmt.Sprintf("%s %s %v", hd.RenderHand(cards), hd.styles.Category.Render(eval.Category.String()), eval.Tiebreak)
	if eval.JokerFilled {
		line += " " + hd.styles.Joker.Render("(joker)")
	}
	fmt.Fprintln(hd.w, line)
}

// ShowWinner announces the winning player
func (hd *HandDisplay) ShowWinner(result poker.Result) {
	fmt.Fprintf(hd.w, "Winner: %s with a %s\n",
		hd.styles.Winner.Render(result.Name),
		hd.styles.Category.Render(result.Hand.Category.String()))
}
