package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(c)
	}
	return row
}

// renderDeck prints the stack with the top card marked
func renderDeck(w io.Writer, deck domain.Deck) {
	if deck.Len() == 0 {
		fmt.Fprintf(w, "%s\n", text.FgYellow.Sprint("The stack is empty"))
		return
	}

	t := newTable(w)
	t.AppendHeader(header("", "POS", "ID", "NAME", "TYPE", "URL"))
	for i, s := range deck.Spots {
		marker := ""
		switch {
		case i == deck.Top:
			marker = text.FgHiGreen.Sprint("▶")
		case i < deck.Top:
			marker = text.FgHiBlack.Sprint("✓")
		}
		t.AppendRow(table.Row{marker, i, s.ID, s.Name, s.Type, shorten(s.URL, 48)})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d left", deck.Remaining()), "", ""})
	t.Render()
}

// renderResult prints a command message and its edits
func renderResult(w io.Writer, result *commands.Result, showEdits bool) {
	fmt.Fprintln(w, text.FgHiGreen.Sprint(result.Message))
	if !showEdits || result.Change == nil || result.Change.Script.Empty() {
		return
	}
	renderScript(w, result.Change.Script)
}

// renderScript prints one row per edit
func renderScript(w io.Writer, script domain.Script[domain.Spot]) {
	t := newTable(w)
	t.AppendHeader(header("#", "EDIT", "FROM", "TO", "SPOT"))
	for i, e := range script {
		from, to, spot := "", "", ""
		switch e.Kind {
		case domain.EditRemove:
			from = fmt.Sprint(e.From)
		case domain.EditMove:
			from, to = fmt.Sprint(e.From), fmt.Sprint(e.To)
		default:
			to = fmt.Sprint(e.To)
			spot = fmt.Sprintf("#%d %s", e.Item.ID, e.Item.Name)
		}
		t.AppendRow(table.Row{i, editColor(e.Kind).Sprint(e.Kind), from, to, spot})
	}
	t.AppendFooter(table.Row{"", script.Summary(), "", "", ""})
	t.Render()
}

func renderSwipes(w io.Writer, swipes []domain.Swipe) {
	if len(swipes) == 0 {
		fmt.Fprintf(w, "%s\n", text.FgYellow.Sprint("No swipes yet"))
		return
	}

	t := newTable(w)
	t.AppendHeader(header("WHEN", "", "ID", "NAME", "TYPE"))
	for _, s := range swipes {
		mark := text.FgRed.Sprint("skip")
		if s.Direction.Liked() {
			mark = text.FgGreen.Sprint("like")
		}
		t.AppendRow(table.Row{s.At.Local().Format(time.DateTime), mark, s.Spot.ID, s.Spot.Name, s.Spot.Type})
	}
	t.Render()
}

func editColor(k domain.EditKind) text.Colors {
	switch k {
	case domain.EditRemove:
		return text.Colors{text.FgRed}
	case domain.EditInsert:
		return text.Colors{text.FgGreen}
	case domain.EditMove:
		return text.Colors{text.FgBlue}
	default:
		return text.Colors{text.FgYellow}
	}
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
