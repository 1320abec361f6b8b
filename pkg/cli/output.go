package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mchmarny/flopctl/pkg/config"
	"github.com/mchmarny/flopctl/pkg/survey"
	"github.com/mchmarny/flopctl/pkg/texture"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

var reportHeader = []string{"Board", "Suits", "Connectivity", "Pairing", "High card", "Wetness", "Wet", "Dynamic", "Hand"}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatYAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	case config.FormatTable:
		return renderTable(w, v)
	default:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	}
}

func renderTable(w io.Writer, v any) error {
	var data pterm.TableData
	switch t := v.(type) {
	case *texture.Report:
		data = reportRows([]*texture.Report{t})
	case []*texture.Report:
		data = reportRows(t)
	case *survey.Summary:
		data = summaryRows(t)
	case float64:
		data = pterm.TableData{{"Dynamic"}, {formatScore(t)}}
	default:
		return fmt.Errorf("table output not supported for %T", v)
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func reportRows(list []*texture.Report) pterm.TableData {
	data := pterm.TableData{reportHeader}
	for _, r := range list {
		data = append(data, []string{
			strings.Join(r.Board, " "),
			r.Suits.String(),
			r.Connectivity.String(),
			r.Pairing.String(),
			r.HighCard.String(),
			strconv.Itoa(r.Wetness),
			strconv.FormatBool(r.Wet),
			formatScore(r.Dynamic),
			r.Hand,
		})
	}
	return data
}

func summaryRows(s *survey.Summary) pterm.TableData {
	data := pterm.TableData{{"Metric", "Value", "Share"}}
	row := func(name string, n int) {
		data = append(data, []string{name, strconv.Itoa(n), share(n, s.Total)})
	}

	row("Total", s.Total)
	for _, c := range []texture.SuitClass{texture.Rainbow, texture.TwoTone, texture.Monotone} {
		row(c.String(), s.Suits[c])
	}
	for _, c := range []texture.ConnectivityClass{texture.Disconnected, texture.ModeratelyConnected, texture.HighlyConnected} {
		row(c.String(), s.Connectivity[c])
	}
	for _, c := range []texture.PairingClass{texture.Unpaired, texture.Paired, texture.Trips} {
		row(c.String(), s.Pairing[c])
	}
	for _, c := range []texture.HighCardClass{texture.AceHigh, texture.KingHigh, texture.QueenOrLower} {
		row(c.String(), s.HighCard[c])
	}
	row("Wet", s.Wet)
	row("Low card", s.LowCard)
	for _, b := range s.Bins() {
		row("Dynamic "+b, s.Histogram[b])
	}

	data = append(data,
		[]string{"Min dynamic", formatScore(s.MinScore), ""},
		[]string{"Max dynamic", formatScore(s.MaxScore), ""},
		[]string{"Mean dynamic", formatScore(s.MeanScore), ""},
	)
	return data
}

func share(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
