package tournament

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aggroot/pokertools/internal/parser"
)

var (
	payoutPattern  = regexp.MustCompile(`finished the tournament in (\d+)[^\n]*received \$`)
	finishPattern  = regexp.MustCompile(`finished the tournament in (\d+)`)
	tournamentFile = regexp.MustCompile(`hhDealer\.com_(\d+)-(\d+)_`)
	handIDPattern  = regexp.MustCompile(`PokerStars Hand #(\d+)`)
	levelPattern   = regexp.MustCompile(`Level ([IVXL]+)`)
	blankLineSplit = regexp.MustCompile(`\n{2,}`)
)

func parsePlace(s string) (int, error) {
	return strconv.Atoi(s)
}

// File is one hand-history file belonging to a tournament, tagged with
// the chunk index extracted from its name.
type File struct {
	Path       string
	Tournament string
	Chunk      int
}

// ParseTournamentID extracts the tournament id and chunk index from a
// filename matching the hhDealer.com_{id}-{chunk}_ pattern. Filenames
// that don't follow the convention use the full base filename as the
// tournament id and chunk 0 (§3), so every file is still grouped into
// exactly one task; ok is always true.
func ParseTournamentID(filename string) (tournamentID string, chunk int, ok bool) {
	m := tournamentFile.FindStringSubmatch(filename)
	if m == nil {
		return filepath.Base(filename), 0, true
	}
	chunk, err := strconv.Atoi(m[2])
	if err != nil {
		return filepath.Base(filename), 0, true
	}
	return m[1], chunk, true
}

// Result is the flat output of driving one tournament's files through
// the parser: every showdown hand found, plus counters for the work
// distributor to aggregate.
type Result struct {
	Hands       []parser.PlayerHand
	HandsParsed int
	ShownHands  int
}

// Run reads files in ascending chunk order, splits each into individual
// hands, classifies tournament stage across the whole tournament, and
// parses every hand (§4.6). Files are decoded leniently: invalid UTF-8
// bytes are replaced rather than failing the whole tournament.
func Run(tournamentID string, files []File) (Result, error) {
	sorted := make([]File, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Chunk < sorted[j].Chunk })

	type rawHand struct {
		text       string
		id         string
		level      string
		chunk      int
		sourceFile string
	}
	var raw []rawHand

	for _, f := range sorted {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return Result{}, fmt.Errorf("tournament %s: read %s: %w", tournamentID, f.Path, err)
		}
		text := toValidUTF8(data)
		for _, chunkText := range splitHands(text) {
			chunkText = strings.TrimSpace(chunkText)
			if chunkText == "" {
				continue
			}
			id := ""
			if m := handIDPattern.FindStringSubmatch(chunkText); m != nil {
				id = m[1]
			}
			level := ""
			if m := levelPattern.FindStringSubmatch(chunkText); m != nil {
				level = m[1]
			}
			raw = append(raw, rawHand{
				text:       chunkText,
				id:         id,
				level:      level,
				chunk:      f.Chunk,
				sourceFile: f.Path,
			})
		}
	}

	// Hands with no parseable "PokerStars Hand #" line fall back to
	// tournament_id_orderindex (§4.6) so every hand still gets a unique id.
	entries := make([]HandEntry, len(raw))
	for i := range raw {
		if raw[i].id == "" {
			raw[i].id = fmt.Sprintf("%s_%d", tournamentID, i)
		}
		entries[i] = HandEntry{
			ID:         raw[i].id,
			Text:       raw[i].text,
			Level:      raw[i].level,
			OrderIndex: i,
			ChunkIndex: raw[i].chunk,
			SourceFile: raw[i].sourceFile,
		}
	}
	stages := ClassifyStages(entries)

	result := Result{}
	for i, r := range raw {
		result.HandsParsed++
		stage := stages[i]
		hands := parser.ParseHand(r.text, stage, tournamentID, r.id, r.chunk, i, r.sourceFile)
		result.Hands = append(result.Hands, hands...)
		result.ShownHands += len(hands)
	}

	return result, nil
}

// splitHands breaks a hand-history file into individual hand texts on
// runs of two or more newlines.
func splitHands(text string) []string {
	return blankLineSplit.Split(text, -1)
}

func toValidUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}
