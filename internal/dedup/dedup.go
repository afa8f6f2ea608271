package dedup

import (
	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/internal/validate"
)

// Outcome is the cross-row fate of one input row after batch resolution.
type Outcome int

const (
	// OutcomeRejected carries through a row validation already rejected.
	OutcomeRejected Outcome = iota
	// OutcomeKeep admits the row to the clean stream.
	OutcomeKeep
	// OutcomeExactDuplicate drops a field-identical repeat silently.
	OutcomeExactDuplicate
	// OutcomeConflict rejects every member of a key group whose members
	// disagree on any field, first-seen row included.
	OutcomeConflict
)

// Stats aggregates what resolution did to the batch.
type Stats struct {
	ExactDuplicates int
	ConflictGroups  int
	ConflictRows    int
}

// Resolve groups individually-valid rows by identity key in first-seen order
// and decides each row's fate. A group whose members are all field-identical
// keeps only its first member; a group with any dissimilarity anywhere
// rejects every member.
func Resolve(rows []canonical.CanonicalRow, verdicts []validate.Verdict) ([]Outcome, Stats) {
	outcomes := make([]Outcome, len(rows))

	groupIndex := make(map[canonical.DedupKey]int)
	var groups [][]int
	for i := range rows {
		if !verdicts[i].Valid() {
			outcomes[i] = OutcomeRejected
			continue
		}
		key, ok := rows[i].Key()
		if !ok {
			// A valid row always carries both key halves; rule out silently
			// admitting an unkeyed row regardless.
			outcomes[i] = OutcomeRejected
			continue
		}
		gi, seen := groupIndex[key]
		if !seen {
			gi = len(groups)
			groupIndex[key] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}

	var stats Stats
	for _, members := range groups {
		if len(members) == 1 {
			outcomes[members[0]] = OutcomeKeep
			continue
		}

		first := rows[members[0]]
		identical := true
		for _, idx := range members[1:] {
			if !first.Equal(rows[idx]) {
				identical = false
				break
			}
		}

		if identical {
			outcomes[members[0]] = OutcomeKeep
			for _, idx := range members[1:] {
				outcomes[idx] = OutcomeExactDuplicate
			}
			stats.ExactDuplicates += len(members) - 1
			continue
		}

		for _, idx := range members {
			outcomes[idx] = OutcomeConflict
		}
		stats.ConflictGroups++
		stats.ConflictRows += len(members)
	}

	return outcomes, stats
}
