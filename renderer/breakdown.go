package renderer

import (
	"fmt"

	"github.com/kuzeyardabulut/fxdesk"
)

type pieceView struct {
	Face  int64
	Kind  string
	Count int64
}

type breakdownPage struct {
	Code        string
	Amount      string
	Pieces      []pieceView
	Fractional  string
	Undividable int64
	TotalPieces int64
}

const breakdownTemplate = `# Denomination breakdown for {{.Amount}}

{{- if .Pieces}}

| Face value | Count |
|---:|---:|
{{- range .Pieces}}
| {{.Face}} {{.Kind}} | {{.Count}} |
{{- end}}

Total pieces to handle: {{.TotalPieces}}
{{- else}}

Nothing to hand out in whole notes or coins.
{{- end}}
{{- if .Fractional}}

Fractional amount: {{.Fractional}}
{{- end}}
{{- if .Undividable}}

**Warning**: a remainder of {{.Undividable}} cannot be broken down further.
{{- end}}
`

// BreakdownMarkdown renders a denomination breakdown.
func BreakdownMarkdown(b fxdesk.Breakdown) string {
	page := breakdownPage{
		Code:        b.Code,
		Amount:      fxdesk.DisplayMoney(b.Code, b.Amount),
		Undividable: b.Undividable,
		TotalPieces: b.TotalPieces(),
	}
	if b.Fractional > 0.009 {
		page.Fractional = fmt.Sprintf("%.2f %s", b.Fractional, b.Code)
	}
	for _, p := range b.Pieces {
		kind := "coin(s)"
		if p.Face >= 20 {
			kind = "note(s)"
		}
		page.Pieces = append(page.Pieces, pieceView{Face: p.Face, Kind: kind, Count: p.Count})
	}
	return renderTemplate("breakdown", breakdownTemplate, page)
}
