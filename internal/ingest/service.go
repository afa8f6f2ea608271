package ingest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/orderflow-etl/internal/canonical"
	"github.com/angelmondragon/orderflow-etl/internal/dedup"
	"github.com/angelmondragon/orderflow-etl/internal/route"
	"github.com/angelmondragon/orderflow-etl/internal/validate"
	"github.com/angelmondragon/orderflow-etl/pkg/db/models"
	"github.com/angelmondragon/orderflow-etl/pkg/enums"
	"github.com/angelmondragon/orderflow-etl/pkg/errors"
	"github.com/angelmondragon/orderflow-etl/pkg/logger"
)

// timestampLayout is the ingestion metadata format: ISO-8601 in UTC (Zulu).
const timestampLayout = "2006-01-02T15:04:05Z"

// Report summarizes one pipeline run.
type Report struct {
	RunID           string
	SourceFile      string
	RowsRead        int
	Clean           int
	Bad             int
	ExactDuplicates int
	ConflictRows    int
}

// Service drives one synchronous batch run: read, canonicalize, validate,
// resolve duplicates, route, persist, derive.
type Service struct {
	canon  *canonical.Canonicalizer
	loader *Loader
	log    *logger.Logger
	now    func() time.Time
}

func NewService(canon *canonical.Canonicalizer, loader *Loader, log *logger.Logger) *Service {
	return &Service{
		canon:  canon,
		loader: loader,
		log:    log,
		now:    time.Now,
	}
}

// Run processes one source file end to end. Row-level quality failures never
// fail the run; only system errors (unreadable input, storage failure) do.
func (s *Service) Run(ctx context.Context, sourceFile string) (*Report, error) {
	runID := uuid.NewString()
	ctx = s.log.WithRunID(ctx, runID)
	ctx = s.log.WithSourceFile(ctx, sourceFile)

	s.log.Info(s.log.WithStage(ctx, "read"), "reading source file")
	rawRows, err := ReadCSV(sourceFile)
	if err != nil {
		return nil, err
	}

	canonRows := make([]canonical.CanonicalRow, len(rawRows))
	verdicts := make([]validate.Verdict, len(rawRows))
	for i := range rawRows {
		canonRows[i] = s.canon.Canonicalize(rawRows[i])
		verdicts[i] = validate.Validate(canonRows[i])
	}

	outcomes, stats := dedup.Resolve(canonRows, verdicts)

	ingestedAt := s.now().UTC().Format(timestampLayout)
	set := LoadSet{}
	report := &Report{
		RunID:           runID,
		SourceFile:      sourceFile,
		RowsRead:        len(rawRows),
		ExactDuplicates: stats.ExactDuplicates,
		ConflictRows:    stats.ConflictRows,
	}

	for i := range rawRows {
		set.Raw = append(set.Raw, rawRecord(rawRows[i], sourceFile, ingestedAt))

		decision := route.Route(verdicts[i], outcomes[i])
		switch decision.Destination {
		case enums.DestinationClean:
			set.Clean = append(set.Clean, cleanRecord(canonRows[i], sourceFile, ingestedAt))
			report.Clean++
		case enums.DestinationBad:
			record, err := badRecord(rawRows[i], decision.Reasons, sourceFile, ingestedAt)
			if err != nil {
				return nil, errors.Wrap(errors.CodeInternal, err, "encoding rejected row")
			}
			set.Bad = append(set.Bad, record)
			report.Bad++
		}
	}

	set.Customers, set.Products, set.Orders, set.Details = Derive(set.Clean)

	s.log.Info(s.log.WithStage(ctx, "load"), "persisting streams and derived tables")
	if err := s.loader.Load(ctx, set); err != nil {
		return nil, err
	}

	s.log.Info(s.log.WithFields(ctx, map[string]any{
		"rows_read":        report.RowsRead,
		"clean":            report.Clean,
		"bad":              report.Bad,
		"exact_duplicates": report.ExactDuplicates,
		"conflict_rows":    report.ConflictRows,
	}), "run completed")

	return report, nil
}

func rawRecord(raw canonical.RawRow, sourceFile, ingestedAt string) models.TransactionRaw {
	return models.TransactionRaw{
		OrderID:      textPtr(raw.OrderID),
		CustomerID:   textPtr(raw.CustomerID),
		CustomerName: textPtr(raw.CustomerName),
		Email:        textPtr(raw.Email),
		Phone:        textPtr(raw.Phone),
		Country:      textPtr(raw.Country),
		State:        textPtr(raw.State),
		City:         textPtr(raw.City),
		Address:      textPtr(raw.Address),
		PostalCode:   textPtr(raw.PostalCode),
		OrderDate:    textPtr(raw.OrderDate),
		ShipDate:     textPtr(raw.ShipDate),
		ShipMode:     textPtr(raw.ShipMode),
		ItemSKU:      textPtr(raw.ItemSKU),
		ItemName:     textPtr(raw.ItemName),
		Quantity:     textPtr(raw.Quantity),
		UnitPrice:    textPtr(raw.UnitPrice),
		Currency:     textPtr(raw.Currency),
		DiscountCode: textPtr(raw.DiscountCode),
		OrderNotes:   textPtr(raw.OrderNotes),
		IngestedAt:   ingestedAt,
		SourceFile:   sourceFile,
	}
}

func cleanRecord(row canonical.CanonicalRow, sourceFile, ingestedAt string) models.TransactionCleaned {
	var quantity *int64
	if row.Quantity != nil {
		q := *row.Quantity
		quantity = &q
	}
	var price *decimal.Decimal
	if row.UnitPrice != nil {
		p := *row.UnitPrice
		price = &p
	}

	return models.TransactionCleaned{
		OrderID:      *row.OrderID,
		ItemSKU:      *row.ItemSKU,
		CustomerID:   row.CustomerID,
		CustomerName: row.CustomerName,
		Email:        row.Email,
		Phone:        row.Phone,
		Country:      row.Country,
		State:        row.State,
		City:         row.City,
		Address:      row.Address,
		PostalCode:   row.PostalCode,
		OrderDate:    canonical.FormatDate(row.OrderDate),
		ShipDate:     canonical.FormatDate(row.ShipDate),
		ShipMode:     row.ShipMode,
		ItemName:     row.ItemName,
		Quantity:     quantity,
		UnitPrice:    price,
		Currency:     row.Currency,
		DiscountCode: row.DiscountCode,
		OrderNotes:   row.OrderNotes,
		IngestedAt:   ingestedAt,
		SourceFile:   sourceFile,
	}
}

func badRecord(raw canonical.RawRow, reasons []enums.ReasonCode, sourceFile, ingestedAt string) (models.TransactionBad, error) {
	payload, err := raw.PayloadJSON()
	if err != nil {
		return models.TransactionBad{}, err
	}
	encodedReasons, err := json.Marshal(reasons)
	if err != nil {
		return models.TransactionBad{}, err
	}

	return models.TransactionBad{
		OrderID:      textPtr(raw.OrderID),
		ItemSKU:      textPtr(raw.ItemSKU),
		ErrorReasons: string(encodedReasons),
		RawRowJSON:   payload,
		IngestedAt:   ingestedAt,
		SourceFile:   sourceFile,
	}, nil
}

func textPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
