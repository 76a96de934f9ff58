package usecase

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/londonlets/api/internal/entity"
)

var interestLabels = map[string]string{
	entity.InterestRent: "Rent",
	entity.InterestBuy:  "Buy",
	entity.InterestSell: "Sell",
}

var statusLabels = map[string]string{
	entity.LeadStatusNew:       "New",
	entity.LeadStatusContacted: "Contacted",
	entity.LeadStatusQualified: "Qualified",
	entity.LeadStatusConverted: "Converted",
}

// InterestLabel maps an interest value to its display label. Unmapped
// values pass through verbatim.
func InterestLabel(interest string) string {
	if label, ok := interestLabels[interest]; ok {
		return label
	}
	return interest
}

// StatusLabel maps a status value to its display label. Unmapped values
// pass through verbatim.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

var exportHeaders = []string{
	"No.", "Name", "Email", "Phone", "Interest",
	"Borough", "Budget", "Message", "Status", "Submitted",
}

// ExportLeadsCSV renders the lead set as a CSV byte buffer: UTF-8 with a
// leading BOM so spreadsheet readers pick up the encoding, a header row,
// then one double-quoted row per lead in the given order. The output is
// byte-identical for identical input; there is no I/O here.
func ExportLeadsCSV(leads []*entity.Lead) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	buf.WriteString(strings.Join(exportHeaders, ","))

	for i, lead := range leads {
		budget := ""
		if lead.Budget != nil {
			budget = "£" + strconv.Itoa(*lead.Budget)
		}

		row := []string{
			strconv.Itoa(i + 1),
			lead.Name,
			lead.Email,
			lead.Phone,
			InterestLabel(lead.InterestedIn),
			lead.Borough,
			budget,
			lead.Message,
			StatusLabel(lead.Status),
			lead.CreatedAt.Format("2006-01-02"),
		}

		buf.WriteByte('\n')
		for j, cell := range row {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			buf.WriteByte('"')
		}
	}

	return buf.Bytes()
}
