// Package distribute fans hand-history processing out across
// tournaments, one job per tournament, and aggregates the results
// (§4.7). The job granularity is a tournament, not a file, since a
// tournament's stage classification needs every one of its chunks.
package distribute

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"

	"github.com/aggroot/pokertools/internal/parser"
	"github.com/aggroot/pokertools/internal/tournament"
)

// Task is one tournament's worth of hand-history files to drive
// through the parser.
type Task struct {
	TournamentID string
	Files        []tournament.File
}

// Totals aggregates the counters produced across every task.
type Totals struct {
	HandsParsed int
	ShownHands  int
}

// GroupFiles buckets file paths by tournament id, extracted from the
// filename's hhDealer.com_{id}-{chunk}_ convention. Files that don't
// match the convention are grouped under their own task, keyed by the
// full filename with chunk 0 (§3).
func GroupFiles(paths []string) []Task {
	byTournament := make(map[string][]tournament.File)
	var order []string

	for _, p := range paths {
		id, chunk, _ := tournament.ParseTournamentID(p)
		if _, seen := byTournament[id]; !seen {
			order = append(order, id)
		}
		byTournament[id] = append(byTournament[id], tournament.File{Path: p, Tournament: id, Chunk: chunk})
	}

	sort.Strings(order)
	tasks := make([]Task, 0, len(order))
	for _, id := range order {
		tasks = append(tasks, Task{TournamentID: id, Files: byTournament[id]})
	}
	return tasks
}

type taskResult struct {
	index       int
	hands       []parser.PlayerHand
	handsParsed int
	shownHands  int
	err         error
}

// Run drives every task through tournament.Run, in parallel across up
// to runtime.GOMAXPROCS(0) workers (never more than the number of
// tasks), falling back to sequential processing if spawning workers is
// refused by the OS. Every task's result is collected first; onBatch is
// then invoked with each successful tournament's parsed hands in task
// order.
func Run(tasks []Task, onBatch func(tournamentID string, hands []parser.PlayerHand) error) (Totals, error) {
	var totals Totals
	if len(tasks) == 0 {
		return totals, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(tasks) {
		workers = len(tasks)
	}
	if workers < 1 {
		workers = 1
	}

	results, err := runParallel(tasks, workers)
	if err != nil && errors.Is(err, os.ErrPermission) {
		slog.Warn("parallel tournament processing unavailable, falling back to sequential mode", "error", err)
		results = runSequential(tasks)
	} else if err != nil {
		return totals, err
	}

	for i, res := range results {
		if res.err != nil {
			slog.Warn("tournament dropped", "tournament_id", tasks[i].TournamentID, "error", res.err)
			continue
		}
		if err := onBatch(tasks[i].TournamentID, res.hands); err != nil {
			return totals, err
		}
		totals.HandsParsed += res.handsParsed
		totals.ShownHands += res.shownHands

		done := i + 1
		if done%50 == 0 || done == len(tasks) {
			slog.Info("processed tournaments", "done", done, "total", len(tasks))
		}
	}

	return totals, nil
}

// runTask drives one tournament through the parser, converting a
// worker panic into an error so one bad tournament can't take down the
// whole distributor (§7: a crashed worker loses that tournament's
// contribution but does not halt the pipeline).
func runTask(t Task) (res taskResult) {
	defer func() {
		if r := recover(); r != nil {
			res.err = fmt.Errorf("tournament %s: worker panic: %v", t.TournamentID, r)
		}
	}()
	result, err := tournament.Run(t.TournamentID, t.Files)
	return taskResult{hands: result.Hands, handsParsed: result.HandsParsed, shownHands: result.ShownHands, err: err}
}

// runParallel is a package-level var, rather than a plain func, so
// tests can substitute a stub that reports the OS refused to spawn
// workers and exercise the sequential fallback in Run.
var runParallel = func(tasks []Task, workers int) ([]taskResult, error) {
	jobCh := make(chan int, len(tasks))
	resultCh := make(chan taskResult, workers)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for idx := range jobCh {
				res := runTask(tasks[idx])
				res.index = idx
				resultCh <- res
			}
		}()
	}

	for i := range tasks {
		jobCh <- i
	}
	close(jobCh)

	results := make([]taskResult, len(tasks))
	go func() {
		for i := 0; i < len(tasks); i++ {
			r := <-resultCh
			results[r.index] = r
		}
		close(done)
	}()
	<-done

	return results, nil
}

func runSequential(tasks []Task) []taskResult {
	results := make([]taskResult, len(tasks))
	for i, t := range tasks {
		res := runTask(t)
		res.index = i
		results[i] = res
	}
	return results
}
