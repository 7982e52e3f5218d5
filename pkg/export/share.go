package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dtnitsch/romaneio/models"
	"github.com/dtnitsch/romaneio/pkg/filter"
)

// shareItemLimit caps the per-manifest lines in the share message; anything
// beyond it collapses into an overflow note.
const shareItemLimit = 5

// ShareMessage builds the WhatsApp summary block for the filtered set:
// optional period line, grand totals, and up to five per-manifest freight
// lines. The asterisks are WhatsApp bold markers.
func ShareMessage(manifests []models.Manifest, startDate, endDate string) string {
	var b strings.Builder
	b.WriteString("*LogiTrack - Resumo de Romaneio*\n")

	if startDate != "" || endDate != "" {
		start := "Início"
		if startDate != "" {
			start = FormatDateBR(startDate)
		}
		end := "Fim"
		if endDate != "" {
			end = FormatDateBR(endDate)
		}
		fmt.Fprintf(&b, "Período: %s até %s\n", start, end)
	}

	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "*Total Notas:* %s\n", FormatBRL(filter.TotalValue(manifests)))
	fmt.Fprintf(&b, "*Total Frete:* %s\n", FormatBRL(filter.TotalFreight(manifests)))
	b.WriteString("----------------------------\n")

	limit := shareItemLimit
	if len(manifests) < limit {
		limit = len(manifests)
	}
	for _, m := range manifests[:limit] {
		var dayFreight float64
		for _, inv := range m.Invoices {
			dayFreight += inv.Freight
		}
		fmt.Fprintf(&b, "• %s: %s de frete\n", FormatDateBR(m.Date), FormatBRL(dayFreight))
	}

	if len(manifests) > shareItemLimit {
		fmt.Fprintf(&b, "... e mais %d romaneios.\n", len(manifests)-shareItemLimit)
	}

	return b.String()
}

// ShareLink returns the wa.me URL that opens the message in WhatsApp.
func ShareLink(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}
