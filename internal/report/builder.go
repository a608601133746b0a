// Package report renders the fixed position/stage/action grid from a
// warehouse into human-readable text (§4.9).
package report

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

var (
	positions        = []string{"BTN", "SB", "BB", "CO", "MP(6)", "MP(7+)", "EP(6)", "EP(7+)"}
	stages           = []string{"preflop", "flop", "turn", "river"}
	actions          = []string{"raise", "bet", "call", "check", "fold"}
	potOrder         = []string{"OPEN", "<0.33x", "0.33x", "0.5x", "0.75x", "1x", "1.5x", "2x", "3x+"}
	bbOrderPre       = []string{"MINRAISE", "2.5BB", "3BB", "4-5BB", "6-9BB", "10BB+", "1BB_CALL", "2BB_CALL", "3-4BB_CALL", "5BB+_CALL"}
	bbOrderPost      = []string{"<1BB", "1-3BB", "3-6BB", "6-10BB", "10BB+"}
	tournamentStages = []string{"start", "pre_bubble", "bubble", "final_table"}
)

// Builder renders reports directly from a warehouse's range_occurrences
// table.
type Builder struct {
	db *sql.DB
}

// NewBuilder wraps an already-open warehouse database handle.
func NewBuilder(db *sql.DB) *Builder {
	return &Builder{db: db}
}

// PositionSummary is one position's share of preflop opening raises,
// returned by PreflopOpenSummary.
type PositionSummary struct {
	Position     string
	UniqueCombos int
	Total        int
}

// PreflopOpenSummary returns, for each position in the fixed ordering,
// the number of distinct combos and total instances seen raising
// preflop. Positions with no preflop raises are omitted.
func (b *Builder) PreflopOpenSummary() ([]PositionSummary, error) {
	rows, err := b.db.Query(`
		SELECT position, COUNT(DISTINCT cards) AS unique_combos, COUNT(*) AS total
		FROM range_occurrences
		WHERE stage = 'preflop' AND action = 'raise'
		GROUP BY position`)
	if err != nil {
		return nil, fmt.Errorf("query preflop open summary: %w", err)
	}
	defer rows.Close()

	byPosition := make(map[string]PositionSummary)
	for rows.Next() {
		var s PositionSummary
		if err := rows.Scan(&s.Position, &s.UniqueCombos, &s.Total); err != nil {
			return nil, fmt.Errorf("scan preflop open summary: %w", err)
		}
		byPosition[s.Position] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []PositionSummary
	for _, pos := range positions {
		if s, ok := byPosition[pos]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type actionData struct {
	position          string
	stage             string
	action            string
	hands             []combo
	total             int
	medianPct         float64
	byPotSize         map[string][]combo
	byBBSize          map[string][]combo
	byTournamentStage map[string][]combo
}

// Generate renders the full fixed-grid report as text.
func (b *Builder) Generate() (string, error) {
	var out strings.Builder
	out.WriteString(strings.Repeat("=", 80) + "\n")
	out.WriteString("POKER RANGE ANALYSIS REPORT\n")
	out.WriteString(strings.Repeat("=", 80) + "\n")

	for _, position := range positions {
		var positionLines []string
		for _, stage := range stages {
			var stageLines []string
			for _, action := range actions {
				data, err := b.fetchActionData(position, stage, action)
				if err != nil {
					return "", err
				}
				if data == nil {
					continue
				}
				stageLines = append(stageLines, formatActionBlock(data)...)
			}
			if len(stageLines) > 0 {
				positionLines = append(positionLines, "\n"+strings.ToUpper(stage)+":")
				positionLines = append(positionLines, strings.Repeat("-", 80))
				positionLines = append(positionLines, stageLines...)
			}
		}
		if len(positionLines) > 0 {
			out.WriteString("\n" + strings.Repeat("=", 80) + "\n")
			out.WriteString(fmt.Sprintf("POSITION: %s\n", position))
			out.WriteString(strings.Repeat("=", 80) + "\n")
			for _, line := range positionLines {
				out.WriteString(line + "\n")
			}
		}
	}

	return out.String(), nil
}

func (b *Builder) fetchActionData(position, stage, action string) (*actionData, error) {
	combos, err := b.queryCombos(position, stage, action)
	if err != nil {
		return nil, err
	}
	if len(combos) == 0 {
		return nil, nil
	}

	total := 0
	counts := make([]int, len(combos))
	for i, c := range combos {
		total += c.Count
		counts[i] = c.Count
	}

	byPot, err := b.queryBucket(position, stage, action, "COALESCE(pot_bucket, 'N/A')")
	if err != nil {
		return nil, err
	}
	byBB, err := b.queryBucket(position, stage, action, "COALESCE(bb_bucket, 'N/A')")
	if err != nil {
		return nil, err
	}
	byStage, err := b.queryBucket(position, stage, action, "COALESCE(tournament_stage, 'UNKNOWN')")
	if err != nil {
		return nil, err
	}

	return &actionData{
		position:          position,
		stage:             stage,
		action:            action,
		hands:             combos,
		total:             total,
		medianPct:         medianFrequencyPct(counts, total),
		byPotSize:         byPot,
		byBBSize:          byBB,
		byTournamentStage: byStage,
	}, nil
}

func (b *Builder) queryCombos(position, stage, action string) ([]combo, error) {
	rows, err := b.db.Query(`
		SELECT cards, COUNT(*) AS count
		FROM range_occurrences
		WHERE position = ? AND stage = ? AND action = ?
		GROUP BY cards`, position, stage, action)
	if err != nil {
		return nil, fmt.Errorf("query combos: %w", err)
	}
	defer rows.Close()

	var combos []combo
	for rows.Next() {
		var c combo
		if err := rows.Scan(&c.Hand, &c.Count); err != nil {
			return nil, fmt.Errorf("scan combo: %w", err)
		}
		combos = append(combos, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortCombos(combos)
	return combos, nil
}

func (b *Builder) queryBucket(position, stage, action, bucketExpr string) (map[string][]combo, error) {
	query := fmt.Sprintf(`
		SELECT %s AS bucket, cards, COUNT(*) AS count
		FROM range_occurrences
		WHERE position = ? AND stage = ? AND action = ?
		GROUP BY bucket, cards`, bucketExpr)
	rows, err := b.db.Query(query, position, stage, action)
	if err != nil {
		return nil, fmt.Errorf("query bucket: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]combo)
	for rows.Next() {
		var bucket string
		var c combo
		if err := rows.Scan(&bucket, &c.Hand, &c.Count); err != nil {
			return nil, fmt.Errorf("scan bucket row: %w", err)
		}
		out[bucket] = append(out[bucket], c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for bucket := range out {
		sortCombos(out[bucket])
	}
	return out, nil
}

func formatActionBlock(data *actionData) []string {
	var lines []string

	handsStr := joinCombos(data.hands)
	lines = append(lines, fmt.Sprintf("\n  %s: %s", strings.ToUpper(data.action), handsStr))
	lines = append(lines, fmt.Sprintf("    Total: %d unique combos, %d instances, median combo frequency: %.2f%%",
		len(data.hands), data.total, data.medianPct))

	if len(data.byPotSize) > 0 {
		lines = append(lines, "    By Pot Size:")
		for _, bucket := range orderedKeys(data.byPotSize, potOrder) {
			lines = append(lines, formatBucketLine(bucket, data.byPotSize[bucket], data.total))
		}
	}

	if len(data.byBBSize) > 0 {
		lines = append(lines, "    By Big Blinds:")
		order := bbOrderPost
		if data.stage == "preflop" {
			order = bbOrderPre
		}
		for _, bucket := range orderedKeys(data.byBBSize, order) {
			lines = append(lines, formatBucketLine(bucket, data.byBBSize[bucket], data.total))
		}
	}

	if len(data.byTournamentStage) > 0 {
		lines = append(lines, "    By Tournament Stage:")
		for _, bucket := range orderedKeys(data.byTournamentStage, tournamentStages) {
			combos := data.byTournamentStage[bucket]
			stageTotal := 0
			for _, c := range combos {
				stageTotal += c.Count
			}
			freqPct := 0.0
			if data.total > 0 {
				freqPct = float64(stageTotal) / float64(data.total) * 100
			}
			lines = append(lines, fmt.Sprintf("      %s: %s [%d instances, %.1f%%]",
				bucket, joinCombos(combos), stageTotal, freqPct))
		}
	}

	return lines
}

func formatBucketLine(bucket string, combos []combo, total int) string {
	bucketTotal := 0
	for _, c := range combos {
		bucketTotal += c.Count
	}
	freqPct := 0.0
	if total > 0 {
		freqPct = float64(bucketTotal) / float64(total) * 100
	}
	return fmt.Sprintf("      %s: %s [%d instances, %.1f%%]", bucket, joinCombos(combos), bucketTotal, freqPct)
}

func joinCombos(combos []combo) string {
	parts := make([]string, len(combos))
	for i, c := range combos {
		parts[i] = fmt.Sprintf("%s(%d)", c.Hand, c.Count)
	}
	return strings.Join(parts, ", ")
}

// orderedKeys returns the keys present in m, ordered by preferred
// first, then any remaining keys sorted alphabetically.
func orderedKeys(m map[string][]combo, preferred []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range preferred {
		if _, ok := m[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	var extra []string
	for k := range m {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
