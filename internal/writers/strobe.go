// internal/writers/strobe.go
package writers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"
)

// Row is one emitted strobemer.
type Row struct {
	SeqID     string `json:"sequence_id"`
	Policy    string `json:"policy"`
	Positions []int  `json:"positions"`
	Hash      uint64 `json:"hash"`
}

// WriteHeader emits the TSV header line.
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, "sequence_id\tpolicy\tpositions\thash")
	return err
}

// WriteTSV emits one row as a TSV line; positions are comma-joined.
func WriteTSV(w io.Writer, r Row) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.SeqID, r.Policy, joinPositions(r.Positions), r.Hash)
	return err
}

// WriteJSON emits all rows as one indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func joinPositions(ps []int) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// IsBrokenPipe reports whether err means the downstream consumer closed
// early (e.g. piping into head).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
