package dataprocessing

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"cabgap/internal/errors"
	"cabgap/pkg/contracts/domain"
)

// timestampLayout is the single canonical layout all timestamps must parse
// under after normalization: day-month-year hour:minute:second.
const timestampLayout = "2-1-2006 15:04:05"

// Cleaner turns raw rows into typed TripRequest values. It normalizes
// timestamp formatting, parses date-times, and coerces categorical columns,
// failing fast on the first bad cell rather than dropping rows (silent data
// loss would corrupt the aggregate).
type Cleaner struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewCleaner creates a cleaner with the record validator registered.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}

	v := validator.New()
	v.RegisterStructValidation(tripRequestInvariants, domain.TripRequest{})

	return &Cleaner{logger: logger, validate: v}
}

// Clean converts every raw row into a TripRequest. Row numbers in errors are
// 1-based and exclude the header.
func (c *Cleaner) Clean(ctx context.Context, table *RawTable) ([]domain.TripRequest, error) {
	records := make([]domain.TripRequest, 0, len(table.Rows))

	for i, row := range table.Rows {
		rowNum := i + 1
		record, err := c.cleanRow(table, row, rowNum)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	c.logger.InfoContext(ctx, "cleaned trip requests",
		slog.Int("record_count", len(records)))

	return records, nil
}

func (c *Cleaner) cleanRow(table *RawTable, row []string, rowNum int) (domain.TripRequest, error) {
	var record domain.TripRequest

	rawID := table.Field(row, ColRequestID)
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return record, errors.NewParseError("request id is not an integer", err).
			WithRow(rowNum).WithValue(rawID)
	}
	record.RequestID = id

	record.PickupPoint = domain.PickupPoint(table.Field(row, ColPickupPoint))
	record.Status = domain.Status(table.Field(row, ColStatus))

	// Missing driver id is valid data (no driver was assigned), not an error.
	if rawDriver := table.Field(row, ColDriverID); rawDriver != "" && !strings.EqualFold(rawDriver, "na") {
		driverID, err := strconv.ParseInt(rawDriver, 10, 64)
		if err != nil {
			return record, errors.NewParseError("driver id is not an integer", err).
				WithRow(rowNum).WithValue(rawDriver)
		}
		record.DriverID = &driverID
	}

	requestTime, err := ParseTimestamp(table.Field(row, ColRequestTime))
	if err != nil {
		return record, asRowError(err, rowNum)
	}
	record.RequestTime = requestTime

	// Missing drop timestamp is valid data (the trip never completed).
	if rawDrop := table.Field(row, ColDropTime); rawDrop != "" && !strings.EqualFold(rawDrop, "na") {
		dropTime, err := ParseTimestamp(rawDrop)
		if err != nil {
			return record, asRowError(err, rowNum)
		}
		record.DropTime = &dropTime
	}

	if err := c.validate.Struct(record); err != nil {
		return record, validationError(err, rowNum, record)
	}

	return record, nil
}

// NormalizeTimestamp canonicalizes a raw timestamp string: the date part
// uses "-" as separator, and a time-of-day lacking a seconds component gets
// ":00" appended. Idempotent. A missing time-of-day is left missing so that
// parsing fails instead of coercing to midnight.
func NormalizeTimestamp(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return strings.Join(fields, " ")
	}

	date := strings.ReplaceAll(fields[0], "/", "-")
	clock := fields[1]
	if strings.Count(clock, ":") == 1 {
		clock += ":00"
	}

	return date + " " + clock
}

// ParseTimestamp normalizes and parses one raw timestamp cell.
func ParseTimestamp(raw string) (time.Time, error) {
	normalized := NormalizeTimestamp(raw)
	ts, err := time.Parse(timestampLayout, normalized)
	if err != nil {
		return time.Time{}, errors.NewParseError(
			"timestamp does not match day-month-year hour:minute:second", err).
			WithValue(raw)
	}
	return ts, nil
}

// tripRequestInvariants registers the two conditional record invariants:
// a driver is assigned exactly when cars were available, and a drop time
// exists exactly when the trip completed.
func tripRequestInvariants(sl validator.StructLevel) {
	record := sl.Current().Interface().(domain.TripRequest)

	if (record.DriverID == nil) != (record.Status == domain.StatusNoCarsAvailable) {
		sl.ReportError(record.DriverID, "DriverID", "driver_id", "driver_presence", "")
	}
	if (record.DropTime != nil) != (record.Status == domain.StatusTripCompleted) {
		sl.ReportError(record.DropTime, "DropTime", "drop_timestamp", "drop_presence", "")
	}
}

// VerifyDistinct confirms no two cleaned records are fully identical and
// that request ids are unique. This is a data-quality guard, not a
// corrective transform: violations abort the run.
func VerifyDistinct(records []domain.TripRequest) error {
	seenRows := make(map[string]int, len(records))
	seenIDs := make(map[int64]int, len(records))

	for i, record := range records {
		key := recordKey(record)
		if first, ok := seenRows[key]; ok {
			return errors.NewValidationError("fully identical records", nil).
				WithRow(i + 1).WithContext("first_row", first+1)
		}
		seenRows[key] = i

		if first, ok := seenIDs[record.RequestID]; ok {
			return errors.NewValidationError("duplicate request id", nil).
				WithRow(i + 1).
				WithContext("first_row", first+1).
				WithContext("request_id", record.RequestID)
		}
		seenIDs[record.RequestID] = i
	}

	return nil
}

func recordKey(r domain.TripRequest) string {
	driver := ""
	if r.DriverID != nil {
		driver = strconv.FormatInt(*r.DriverID, 10)
	}
	drop := ""
	if r.DropTime != nil {
		drop = r.DropTime.Format(time.RFC3339)
	}
	return fmt.Sprintf("%d|%s|%s|%s|%s|%s",
		r.RequestID, r.PickupPoint, driver, r.Status,
		r.RequestTime.Format(time.RFC3339), drop)
}

// asRowError attaches the row number to a parse error raised below row level.
func asRowError(err error, rowNum int) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.WithRow(rowNum)
	}
	return err
}

// validationError maps validator failures onto the VALIDATION error type
// with row and field context.
func validationError(err error, rowNum int, record domain.TripRequest) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		var msg string
		switch first.Tag() {
		case "oneof":
			msg = fmt.Sprintf("%s has a value outside its known category set", first.Field())
		case "driver_presence":
			msg = "driver id must be absent exactly when no cars were available"
		case "drop_presence":
			msg = "drop timestamp must be present exactly when the trip completed"
		default:
			msg = fmt.Sprintf("%s failed %s validation", first.Field(), first.Tag())
		}
		return errors.NewValidationError(msg, err).
			WithRow(rowNum).
			WithContext("request_id", record.RequestID)
	}
	return errors.NewValidationError("record validation failed", err).WithRow(rowNum)
}
