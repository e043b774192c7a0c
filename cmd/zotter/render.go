package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hpungsan/zotter/internal/ops"
)

// Message tones.
type tone int

const (
	styleOK tone = iota
	styleWarn
	styleDanger
	styleMuted
)

// view renders human-readable output. Styles come from a renderer bound to
// the writer, so color is dropped when output is not a terminal.
type view struct {
	w io.Writer

	ok      lipgloss.Style
	warn    lipgloss.Style
	danger  lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
	index   lipgloss.Style
	date    lipgloss.Style
	cat     lipgloss.Style
	border  lipgloss.Style
	panel   lipgloss.Style
	heading lipgloss.Style
}

func newView(w io.Writer) *view {
	r := lipgloss.NewRenderer(w)
	return &view{
		w:       w,
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		danger:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:   r.NewStyle().Faint(true),
		title:   r.NewStyle().Foreground(lipgloss.Color("2")),
		index:   r.NewStyle().Foreground(lipgloss.Color("6")),
		date:    r.NewStyle().Foreground(lipgloss.Color("5")),
		cat:     r.NewStyle().Foreground(lipgloss.Color("4")),
		border:  r.NewStyle().Faint(true),
		panel:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		heading: r.NewStyle().Bold(true),
	}
}

func (v *view) style(t tone) lipgloss.Style {
	switch t {
	case styleOK:
		return v.ok
	case styleWarn:
		return v.warn
	case styleDanger:
		return v.danger
	default:
		return v.muted
	}
}

// message prints "<label> <text>" with the label styled by tone.
func (v *view) message(t tone, label, text string) error {
	if text == "" {
		_, err := fmt.Fprintln(v.w, v.style(t).Render(label))
		return err
	}
	_, err := fmt.Fprintf(v.w, "%s %s\n", v.style(t).Render(label), text)
	return err
}

func (v *view) added(out *ops.AddOutput) error {
	return v.message(styleOK, "Success!", fmt.Sprintf("Note '%s' captured.", out.Note.Title))
}

func (v *view) noteList(out *ops.ListOutput) error {
	if out.Total == 0 {
		return v.message(styleMuted, "Your notebook is empty.", "")
	}
	return v.notesTable("Active Notes", out.Items)
}

func (v *view) searchResults(out *ops.SearchOutput) error {
	if len(out.Items) == 0 {
		return v.message(styleDanger, fmt.Sprintf("No matches found for '%s'", out.Query), "")
	}
	return v.notesTable(fmt.Sprintf("Search Results for '%s'", out.Query), out.Items)
}

func (v *view) notesTable(caption string, items []ops.Item) error {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{strconv.Itoa(it.Index), it.Date, it.Category, it.Title}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(v.border).
		Headers("ID", "Date", "Category", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return v.heading.Padding(0, 1)
			}
			switch col {
			case 0:
				return v.index.Padding(0, 1)
			case 1:
				return v.date.Padding(0, 1)
			case 2:
				return v.cat.Padding(0, 1)
			default:
				return v.title.Padding(0, 1)
			}
		})

	_, err := fmt.Fprintf(v.w, "%s\n%s\n", v.heading.Render(caption), t.String())
	return err
}

func (v *view) trashList(out *ops.ListOutput) error {
	if out.Total == 0 {
		return v.message(styleOK, "Trash is empty.", "")
	}

	rows := make([][]string, len(out.Items))
	for i, it := range out.Items {
		rows[i] = []string{strconv.Itoa(it.Index), it.Date, it.Title}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(v.border).
		Headers("ID", "Date", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return v.heading.Padding(0, 1)
			case col == 0:
				return v.danger.Padding(0, 1)
			default:
				return v.muted.Padding(0, 1)
			}
		})

	_, err := fmt.Fprintf(v.w, "%s\n%s\n", v.heading.Render("Recycle Bin"), t.String())
	return err
}

// peek prints the category and date line, then the content in a bordered panel.
func (v *view) peek(out *ops.PeekOutput) error {
	n := out.Note
	header := fmt.Sprintf("%s | %s", v.cat.Bold(true).Render(n.Category), v.date.Render(n.Date))
	body := lipgloss.JoinVertical(lipgloss.Left, v.ok.Render(n.Title), "", n.Content)

	_, err := fmt.Fprintf(v.w, "%s\n%s\n", header, v.panel.Render(body))
	return err
}

func (v *view) incinerated(out *ops.IncinerateOutput) error {
	switch out.Outcome {
	case ops.OutcomeAlreadyEmpty:
		return v.message(styleMuted, "Trash is already empty.", "")
	case ops.OutcomeAborted:
		return v.message(styleMuted, "Aborted.", "")
	default:
		return v.message(styleDanger, "All trash incinerated.", out.Message)
	}
}

func (v *view) exported(out *ops.ExportOutput) error {
	noun := "notes"
	if out.Count == 1 {
		noun = "note"
	}
	return v.message(styleOK, "Exported", fmt.Sprintf("%d %s %s to %s", out.Count, out.Collection, noun, out.Path))
}
