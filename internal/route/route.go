package route

import (
	"github.com/angelmondragon/orderflow-etl/internal/dedup"
	"github.com/angelmondragon/orderflow-etl/internal/validate"
	"github.com/angelmondragon/orderflow-etl/pkg/enums"
)

// Decision is the destination stream for one row plus the reasons that sent
// it there. Every row additionally reaches the raw stream; DestinationRaw
// marks rows that reach only it.
type Decision struct {
	Destination enums.Destination
	Reasons     []enums.ReasonCode
}

// Route maps a row's verdict and batch outcome to exactly one destination.
// A row never lands in both clean and bad.
func Route(verdict validate.Verdict, outcome dedup.Outcome) Decision {
	switch outcome {
	case dedup.OutcomeKeep:
		return Decision{Destination: enums.DestinationClean}
	case dedup.OutcomeExactDuplicate:
		return Decision{Destination: enums.DestinationRaw}
	case dedup.OutcomeConflict:
		reasons := make([]enums.ReasonCode, 0, len(verdict.Reasons)+1)
		reasons = append(reasons, verdict.Reasons...)
		reasons = append(reasons, enums.ReasonConflictingDuplicate)
		return Decision{Destination: enums.DestinationBad, Reasons: reasons}
	default:
		return Decision{Destination: enums.DestinationBad, Reasons: verdict.Reasons}
	}
}
