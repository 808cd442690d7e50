package entity

import (
	"github.com/transitlint/gtfs-validator/notice"
	"github.com/transitlint/gtfs-validator/parser"
	"github.com/transitlint/gtfs-validator/validator"
)

// PrimaryKeyValidator validates primary key uniqueness
type PrimaryKeyValidator struct{}

// NewPrimaryKeyValidator creates a new primary key validator
func NewPrimaryKeyValidator() *PrimaryKeyValidator {
	return &PrimaryKeyValidator{}
}

// Validate checks primary key uniqueness in all files. Every file's table is
// built up front and wrapped in a single parser.Feed, the C9 feed container,
// so validateFile resolves rows through Feed.Table/Feed.Row instead of
// holding its own *parser.Table reference.
func (v *PrimaryKeyValidator) Validate(loader *parser.FeedLoader, container *notice.NoticeContainer, config validator.Config) {
	files := loader.ListFiles()

	tables := make(map[string]*parser.Table)
	for _, filename := range files {
		primaryKeyFields := v.getPrimaryKeyFields(filename)
		if len(primaryKeyFields) == 0 {
			continue // No primary key defined for this file
		}

		table, err := v.buildTable(loader, filename, primaryKeyFields)
		if err != nil {
			continue
		}
		tables[filename] = table
	}

	feed := parser.NewFeed(tables)
	for _, filename := range files {
		v.validateFile(feed, container, filename)
	}
}

// buildTable reads filename through loader and indexes it by primaryKeyFields.
func (v *PrimaryKeyValidator) buildTable(loader *parser.FeedLoader, filename string, primaryKeyFields []string) (*parser.Table, error) {
	reader, err := loader.GetFile(filename)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	csvFile, err := parser.NewCSVFile(reader, filename)
	if err != nil {
		return nil, err
	}

	return parser.BuildTable(csvFile, primaryKeyFields)
}

// validateFile validates primary key uniqueness in a single file, resolving
// its rows through feed rather than a table reference of its own.
func (v *PrimaryKeyValidator) validateFile(feed *parser.Feed, container *notice.NoticeContainer, filename string) {
	table := feed.Table(filename)
	if table == nil {
		return // No table built for this file (missing, unkeyed, or unreadable)
	}

	primaryKeyFields := table.PrimaryKeyFields()

	for key, idxs := range table.Duplicates() {
		first, ok := feed.Row(filename, key)
		if !ok {
			continue
		}
		for _, idx := range idxs[1:] {
			row := table.Rows[idx]
			if len(primaryKeyFields) == 1 {
				container.AddNotice(notice.NewDuplicateKeyNotice(
					filename,
					primaryKeyFields[0],
					row.Values[primaryKeyFields[0]],
					first.RowNumber,
					row.RowNumber,
				))
			} else {
				// For composite keys, we'll use the first field in the notice
				container.AddNotice(notice.NewDuplicateKeyNotice(
					filename,
					primaryKeyFields[0],
					v.buildCompositeKey(&row, primaryKeyFields), // Use the composite key as the value
					first.RowNumber,
					row.RowNumber,
				))
			}
		}
	}
}

// buildCompositeKey builds a composite key from multiple fields
func (v *PrimaryKeyValidator) buildCompositeKey(row *parser.CSVRow, fields []string) string {
	if len(fields) == 1 {
		return row.Values[fields[0]]
	}

	// Join multiple fields with a delimiter
	key := ""
	for i, field := range fields {
		if i > 0 {
			key += "|"
		}
		key += row.Values[field]
	}
	return key
}

// getPrimaryKeyFields returns the primary key fields for a given file
func (v *PrimaryKeyValidator) getPrimaryKeyFields(filename string) []string {
	switch filename {
	case "agency.txt":
		return []string{"agency_id"}
	case "stops.txt":
		return []string{"stop_id"}
	case "routes.txt":
		return []string{"route_id"}
	case "trips.txt":
		return []string{"trip_id"}
	case "stop_times.txt":
		return []string{"trip_id", "stop_sequence"}
	case "calendar.txt":
		return []string{"service_id"}
	case "calendar_dates.txt":
		return []string{"service_id", "date"}
	case "fare_attributes.txt":
		return []string{"fare_id"}
	case "fare_rules.txt":
		// fare_rules has no single primary key, but combinations should be unique
		return []string{"fare_id", "route_id", "origin_id", "destination_id", "contains_id"}
	case "shapes.txt":
		return []string{"shape_id", "shape_pt_sequence"}
	case "frequencies.txt":
		return []string{"trip_id", "start_time"}
	case "transfers.txt":
		return []string{"from_stop_id", "to_stop_id", "from_trip_id", "to_trip_id"}
	case "pathways.txt":
		return []string{"pathway_id"}
	case "levels.txt":
		return []string{"level_id"}
	case "attributions.txt":
		return []string{"attribution_id"}
	default:
		return []string{}
	}
}
