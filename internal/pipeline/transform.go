package pipeline

import (
	"strconv"
	"strings"

	"github.com/rawblock/visa-interchange/internal/artifact"
)

const (
	ctfLength      = 168
	expandedLength = 170
	expandedPrefixEnd = 4 // offsets [2:4) are the stripped prefix in expanded lines
)

// Transform runs the record framer: normalizes line length, selects lines
// for family, multiplexes sequence-numbered sub-records into per-transaction
// rows, and returns one string column per sub-record sequence number.
//
// An unknown header length is an input-shape condition: it is reported via
// the returned ok=false and an empty frame, never a Go error, per §7.
func Transform(lines []string, fam RecordFamily, logf func(string, ...any)) (frame *artifact.Frame, ok bool) {
	normalized, ok := normalizeCTF(lines, logf)
	if !ok {
		return artifact.NewFrame(0), false
	}

	selected := selectLines(normalized, fam)
	transactions := groupTransactions(selected)

	return buildFrame(transactions, fam), true
}

// normalizeCTF inspects the first surviving line to decide whether the file
// is already CTF (168 chars) or expanded (170 chars, with a 2-char prefix at
// offset 2:4 to strip). Any other length is an input-shape failure.
func normalizeCTF(lines []string, logf func(string, ...any)) ([]string, bool) {
	if len(lines) == 0 {
		return nil, true
	}

	switch len(lines[0]) {
	case ctfLength:
		return lines, true
	case expandedLength:
		out := make([]string, len(lines))
		for i, l := range lines {
			if len(l) != expandedLength {
				if logf != nil {
					logf("transform: inconsistent expanded line length at row %d: %d", i, len(l))
				}
				return nil, false
			}
			out[i] = l[:2] + l[expandedPrefixEnd:]
		}
		return out, true
	default:
		if logf != nil {
			logf("transform: unknown header length %d", len(lines[0]))
		}
		return nil, false
	}
}

// selectLines filters to the family's transaction-code and sub-record-
// sequence allow-lists, and for VSS, the embedded type/suffix discriminator.
func selectLines(lines []string, fam RecordFamily) []string {
	tcAllow := toSet(fam.TCAllow)
	tcsnAllow := toSet(fam.TCSNAllow)

	var out []string
	for _, l := range lines {
		if len(l) < 4 {
			continue
		}
		tc := l[0:2]
		tcsn := l[3:4]
		if _, ok := tcAllow[tc]; !ok {
			continue
		}
		if _, ok := tcsnAllow[tcsn]; !ok {
			continue
		}
		if fam.VSSType != "" {
			if len(l) < vssSuffixEnd {
				continue
			}
			if l[vssPosStart:vssPosEnd] != fam.VSSType {
				continue
			}
			if l[vssSuffixStart:vssSuffixEnd] != vssSuffixValue {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

// groupTransactions multiplexes the selected lines into transactions: a new
// transaction opens whenever the observed sequence number is less than or
// equal to the previous one (literal per §4.1 step 5; the separate "strictly
// increasing within a transaction" invariant from §3 is validated by tests,
// not re-derived here — see SPEC_FULL.md's Open Questions resolution).
func groupTransactions(lines []string) [][8]string {
	var transactions [][8]string
	prevSeq := -1

	for _, l := range lines {
		seq, err := strconv.Atoi(l[3:4])
		if err != nil {
			continue
		}
		if len(transactions) == 0 || seq <= prevSeq {
			transactions = append(transactions, [8]string{})
		}
		transactions[len(transactions)-1][seq] = l
		prevSeq = seq
	}
	return transactions
}

func buildFrame(transactions [][8]string, fam RecordFamily) *artifact.Frame {
	f := artifact.NewFrame(len(transactions))
	for seq := 0; seq < 8; seq++ {
		col := make([]string, len(transactions))
		for i, t := range transactions {
			col[i] = t[seq]
		}
		f.AddColumn(artifact.NewStringColumn(strconv.Itoa(seq), col))
	}
	return f
}

func toSet(vals []string) map[string]struct{} {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[strings.TrimSpace(v)] = struct{}{}
	}
	return m
}
