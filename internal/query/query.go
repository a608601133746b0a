// Package query implements the aggregate range query service that
// backs both the CLI `query` subcommand and the HTTP /ranges endpoint
// (§4.10).
package query

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aggroot/pokertools/internal/rangeerr"
)

// Filters is the set of predicates a caller can apply to a range
// query. Position, Stage, and Action are required; everything else is
// optional.
type Filters struct {
	Position string
	Stage    string
	Action   string

	TournamentStage string
	PotBucket       string
	BBBucket        string
	StackBucket     string
	Player          string
	TournamentID    string
	Cards           string

	StackBBMin *float64
	StackBBMax *float64

	Limit int
}

// HandSummary is one hand's share of a result set.
type HandSummary struct {
	Count        int     `json:"count"`
	FrequencyPct float64 `json:"frequency_pct"`
}

// Summary is the shape returned for the "all" aggregate and for each
// bucket in a bucketed aggregate.
type Summary struct {
	Hands              map[string]HandSummary `json:"hands"`
	TotalInstances     int                    `json:"total_instances"`
	UniqueCombos       int                    `json:"unique_combos"`
	MedianFrequencyPct float64                `json:"median_frequency_pct"`
}

// Result is the full response shape for a range query: the
// unbucketed "all" summary plus four bucketed breakdowns.
type Result struct {
	All               Summary            `json:"all"`
	ByPotSize         map[string]Summary `json:"by_pot_size"`
	ByBBSize          map[string]Summary `json:"by_bb_size"`
	ByStackBucket     map[string]Summary `json:"by_stack_bucket"`
	ByTournamentStage map[string]Summary `json:"by_tournament_stage"`
}

// Service executes range queries against a warehouse database.
type Service struct {
	db *sql.DB
}

// NewService wraps an open warehouse database handle.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// QueryRanges validates filters, builds the WHERE clause shared by all
// five aggregates, and executes them (§4.10).
func (s *Service) QueryRanges(f Filters) (Result, error) {
	if f.Position == "" || f.Stage == "" || f.Action == "" {
		return Result{}, rangeerr.Wrap(rangeerr.ErrInvalidInput, "position, stage, and action filters are required")
	}

	where, args := buildWhere(f)

	all, err := s.queryAll(where, args, f.Limit)
	if err != nil {
		return Result{}, err
	}
	byPot, err := s.queryBucket(where, args, "COALESCE(pot_bucket, 'N/A')")
	if err != nil {
		return Result{}, err
	}
	byBB, err := s.queryBucket(where, args, "COALESCE(bb_bucket, 'N/A')")
	if err != nil {
		return Result{}, err
	}
	byStack, err := s.queryBucket(where, args, "COALESCE(stack_bucket, 'UNKNOWN')")
	if err != nil {
		return Result{}, err
	}
	byStage, err := s.queryBucket(where, args, "COALESCE(tournament_stage, 'UNKNOWN')")
	if err != nil {
		return Result{}, err
	}

	return Result{
		All:               all,
		ByPotSize:         byPot,
		ByBBSize:          byBB,
		ByStackBucket:     byStack,
		ByTournamentStage: byStage,
	}, nil
}

func buildWhere(f Filters) (string, []any) {
	clauses := []string{"position = ?", "stage = ?", "action = ?"}
	args := []any{f.Position, f.Stage, f.Action}

	addEq := func(col, val string) {
		if val != "" {
			clauses = append(clauses, col+" = ?")
			args = append(args, val)
		}
	}
	addEq("tournament_stage", f.TournamentStage)
	addEq("pot_bucket", f.PotBucket)
	addEq("bb_bucket", f.BBBucket)
	addEq("stack_bucket", f.StackBucket)
	addEq("player", f.Player)
	addEq("tournament_id", f.TournamentID)
	addEq("cards", f.Cards)

	if f.StackBBMin != nil {
		clauses = append(clauses, "stack_size_bb >= ?")
		args = append(args, *f.StackBBMin)
	}
	if f.StackBBMax != nil {
		clauses = append(clauses, "stack_size_bb <= ?")
		args = append(args, *f.StackBBMax)
	}

	return strings.Join(clauses, " AND "), args
}

func (s *Service) queryAll(where string, args []any, limit int) (Summary, error) {
	query := fmt.Sprintf(`
		SELECT cards, COUNT(*) AS count
		FROM range_occurrences
		WHERE %s
		GROUP BY cards
		ORDER BY count DESC`, where)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: query all: %v", rangeerr.ErrIOFailure, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	var order []string
	for rows.Next() {
		var hand string
		var count int
		if err := rows.Scan(&hand, &count); err != nil {
			return Summary{}, fmt.Errorf("%w: scan all row: %v", rangeerr.ErrIOFailure, err)
		}
		counts[hand] = count
		order = append(order, hand)
	}
	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", rangeerr.ErrIOFailure, err)
	}

	return buildSummary(counts), nil
}

func (s *Service) queryBucket(where string, args []any, bucketExpr string) (map[string]Summary, error) {
	query := fmt.Sprintf(`
		SELECT %s AS bucket, cards, COUNT(*) AS count
		FROM range_occurrences
		WHERE %s
		GROUP BY bucket, cards`, bucketExpr, where)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query bucket: %v", rangeerr.ErrIOFailure, err)
	}
	defer rows.Close()

	perBucket := make(map[string]map[string]int)
	for rows.Next() {
		var bucket, hand string
		var count int
		if err := rows.Scan(&bucket, &hand, &count); err != nil {
			return nil, fmt.Errorf("%w: scan bucket row: %v", rangeerr.ErrIOFailure, err)
		}
		if perBucket[bucket] == nil {
			perBucket[bucket] = make(map[string]int)
		}
		perBucket[bucket][hand] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", rangeerr.ErrIOFailure, err)
	}

	out := make(map[string]Summary, len(perBucket))
	for bucket, counts := range perBucket {
		out[bucket] = buildSummary(counts)
	}
	return out, nil
}

// buildSummary shapes a hand->count map into the spec's summary
// object: per-hand frequency_pct, total_instances, unique_combos, and
// median_frequency_pct, all rounded to 2 decimals where applicable.
func buildSummary(counts map[string]int) Summary {
	total := 0
	rawCounts := make([]int, 0, len(counts))
	for _, c := range counts {
		total += c
		rawCounts = append(rawCounts, c)
	}

	hands := make(map[string]HandSummary, len(counts))
	for hand, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = round2(float64(count) / float64(total) * 100)
		}
		hands[hand] = HandSummary{Count: count, FrequencyPct: pct}
	}

	return Summary{
		Hands:              hands,
		TotalInstances:     total,
		UniqueCombos:       len(counts),
		MedianFrequencyPct: round2(medianPct(rawCounts, total)),
	}
}

func medianPct(counts []int, total int) float64 {
	if len(counts) == 0 || total == 0 {
		return 0
	}
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	n := len(sorted)
	var med float64
	if n%2 == 1 {
		med = float64(sorted[n/2])
	} else {
		med = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return med / float64(total) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
