package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvsearch/search"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted).Width(10)
	failStyle   = lipgloss.NewStyle().Foreground(colorError)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// summary is the algorithm-independent view of a search.Result.
type summary struct {
	alg      search.Algorithm
	found    bool
	actions  []string
	cost     float64
	expanded int
	err      error
}

func summarize[S comparable, A any](alg search.Algorithm, res *search.Result[S, A], err error) summary {
	s := summary{alg: alg, err: err}
	if res == nil {
		return s
	}
	s.found, s.cost, s.expanded = res.Found, res.Cost, res.Expanded
	s.actions = make([]string, len(res.Actions))
	for i, a := range res.Actions {
		s.actions[i] = fmt.Sprint(a)
	}
	return s
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintln(w, titleStyle.Render(s.alg.Title()))
	if s.err != nil {
		fmt.Fprintln(w, labelStyle.Render("error")+failStyle.Render(s.err.Error()))
		return
	}
	row := func(k, v string) { fmt.Fprintln(w, labelStyle.Render(k)+v) }
	row("found", strconv.FormatBool(s.found))
	row("actions", strconv.Itoa(len(s.actions)))
	row("cost", strconv.FormatFloat(s.cost, 'g', -1, 64))
	row("expanded", strconv.Itoa(s.expanded))
	if len(s.actions) > 0 {
		row("path", strings.Join(s.actions, " "))
	}
}

func printTable(w io.Writer, rows []summary) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("algorithm", "found", "actions", "cost", "expanded").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range rows {
		if s.err != nil {
			t.Row(s.alg.Title(), "error", "-", "-", s.err.Error())
			continue
		}
		t.Row(
			s.alg.Title(),
			strconv.FormatBool(s.found),
			strconv.Itoa(len(s.actions)),
			strconv.FormatFloat(s.cost, 'g', -1, 64),
			strconv.Itoa(s.expanded),
		)
	}
	fmt.Fprintln(w, t.Render())
}
