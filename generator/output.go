package generator

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tsawler/minutes/model"
)

var (
	nameNumber = regexp.MustCompile(`N\d+`)
	nameDate   = regexp.MustCompile(`\d{8}`)
)

// OutputName returns the file name of the report that follows source. The
// first "N<digits>" of the source name takes the new meeting number, or
// "_N<number>" is appended when there is none, and the first eight-digit
// run takes the new date as YYYYMMDD when date is a valid DD/MM/YYYY.
//
//	OutputName("PENTA_MoM-PV N12 20260211.docx", 13, "25/02/2026")
//	// "PENTA_MoM-PV N13 20260225.docx"
func OutputName(source string, number int, date string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	n := fmt.Sprintf("N%d", number)
	if loc := nameNumber.FindStringIndex(stem); loc != nil {
		stem = stem[:loc[0]] + n + stem[loc[1]:]
	} else {
		stem += "_" + n
	}

	if t, err := time.Parse(model.DateLayout, strings.TrimSpace(date)); err == nil {
		if loc := nameDate.FindStringIndex(stem); loc != nil {
			stem = stem[:loc[0]] + t.Format("20060102") + stem[loc[1]:]
		}
	}
	return stem + ".docx"
}
