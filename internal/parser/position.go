package parser

// positionTables maps total table size to the position alphabet
// described in §3's invariants, indexed by seats-after-button.
var positionTables = map[int][]string{
	2: {"BTN", "BB"},
	3: {"BTN", "SB", "BB"},
	4: {"BTN", "SB", "BB", "CO"},
	5: {"BTN", "SB", "BB", "EP(6)", "CO"},
	6: {"BTN", "SB", "BB", "EP(6)", "MP(6)", "CO"},
}

// positionTables7Plus are the explicit EP(7+)/MP(7+) alphabets for
// 7-, 8-, 9- and 10-handed tables: CO is always seats-after-button
// totalSeats-1, BTN is 0, SB is 1, BB is 2, and the remaining seats
// split between EP(7+) (further from the button) and MP(7+) (nearer
// the cutoff). There is no alphabet for tables larger than 10-handed:
// every seat at such a table, the button included, maps to UNKNOWN.
var positionTables7Plus = map[int][]string{
	7:  {"BTN", "SB", "BB", "EP(7+)", "EP(7+)", "MP(7+)", "CO"},
	8:  {"BTN", "SB", "BB", "EP(7+)", "EP(7+)", "MP(7+)", "MP(7+)", "CO"},
	9:  {"BTN", "SB", "BB", "EP(7+)", "EP(7+)", "EP(7+)", "MP(7+)", "MP(7+)", "CO"},
	10: {"BTN", "SB", "BB", "EP(7+)", "EP(7+)", "EP(7+)", "EP(7+)", "MP(7+)", "MP(7+)", "CO"},
}

// Position computes the position label for a seat relative to the
// button, per §4.2: k = (seat - buttonSeat) mod totalSeats, looked up
// in the per-table-size alphabet.
func Position(seat, buttonSeat, totalSeats int) string {
	if totalSeats <= 0 {
		return "UNKNOWN"
	}

	k := (seat - buttonSeat) % totalSeats
	if k < 0 {
		k += totalSeats
	}

	table, ok := positionTables[totalSeats]
	if !ok {
		table = positionTables7Plus[totalSeats]
	}
	if k < 0 || k >= len(table) || table[k] == "" {
		return "UNKNOWN"
	}
	return table[k]
}
