package handler

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/unifit/unifit-api/internal/core/domain"
)

const (
	csvBOM        = "\ufeff"
	csvHeader     = "ID,Data/Hora,Tipo Usuario,ID Usuario,Nome Usuario,Acao,Detalhes,IP"
	csvTimeLayout = "02/01/2006, 15:04:05"
)

// writeActivityCSV renders records the way spreadsheet users of the admin
// panel expect: UTF-8 BOM, numeric ids bare, every text cell quoted, pt-BR
// timestamps in loc.
func writeActivityCSV(w io.Writer, records []domain.ActivityRecord, loc *time.Location) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(csvBOM)
	bw.WriteString(csvHeader)
	bw.WriteByte('\n')

	for i, r := range records {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(strconv.FormatInt(r.ID, 10))
		bw.WriteByte(',')
		bw.WriteString(quoteCSV(r.CreatedAt.In(loc).Format(csvTimeLayout)))
		bw.WriteByte(',')
		bw.WriteString(quoteCSV(string(r.ActorType)))
		bw.WriteByte(',')
		bw.WriteString(strconv.FormatInt(r.ActorID, 10))
		bw.WriteByte(',')
		bw.WriteString(quoteCSV(r.ActorName))
		bw.WriteByte(',')
		bw.WriteString(quoteCSV(r.Action))
		bw.WriteByte(',')
		bw.WriteString(quoteCSV(deref(r.Details)))
		bw.WriteByte(',')
		bw.WriteString(quoteCSV(deref(r.IP)))
	}
	return bw.Flush()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
