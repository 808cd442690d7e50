package core

import (
	"log"
	"testing"

	"github.com/transitlint/gtfs-validator/notice"
	"github.com/transitlint/gtfs-validator/parser"
	"github.com/transitlint/gtfs-validator/testutil"
	gtfsvalidator "github.com/transitlint/gtfs-validator/validator"
)

func TestDuplicateKeyValidator_Validate(t *testing.T) {
	tests := []struct {
		name                string
		files               map[string]string
		expectedNoticeCodes []string
		description         string
	}{
		{
			name: "no duplicate keys",
			files: map[string]string{
				"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles\n2,Bus,http://bus.example,America/Los_Angeles",
				"stops.txt":  "stop_id,stop_name,stop_lat,stop_lon\n1,Main St,34.05,-118.25\n2,Second St,34.06,-118.26",
			},
			expectedNoticeCodes: []string{},
			description:         "Files with unique keys should not generate notices",
		},
		{
			name: "duplicate agency_id not reported here",
			files: map[string]string{
				"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles\n1,Bus,http://bus.example,America/Los_Angeles", // Duplicate agency_id
			},
			expectedNoticeCodes: []string{},
			description:         "Single-column-key files are entity.PrimaryKeyValidator's responsibility, not this validator's",
		},
		{
			name: "duplicate stop_id not reported here",
			files: map[string]string{
				"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n1,Main St,34.05,-118.25\n1,First St,34.06,-118.26", // Duplicate stop_id
			},
			expectedNoticeCodes: []string{},
			description:         "Single-column-key files are entity.PrimaryKeyValidator's responsibility, not this validator's",
		},
		{
			name: "duplicate route_id not reported here",
			files: map[string]string{
				"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type\n1,1,Red,Red Line,3\n1,1,Blue,Blue Line,3", // Duplicate route_id
			},
			expectedNoticeCodes: []string{},
			description:         "Single-column-key files are entity.PrimaryKeyValidator's responsibility, not this validator's",
		},
		{
			name: "duplicate trip_id not reported here",
			files: map[string]string{
				"trips.txt": "route_id,service_id,trip_id\n1,S1,T1\n1,S1,T1", // Duplicate trip_id
			},
			expectedNoticeCodes: []string{},
			description:         "Single-column-key files are entity.PrimaryKeyValidator's responsibility, not this validator's",
		},
		{
			name: "duplicate composite key in stop_times.txt",
			files: map[string]string{
				"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nT1,08:00:00,08:00:00,1,1\nT1,08:01:00,08:01:00,2,1", // Same trip_id + stop_sequence
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "Duplicate composite key (trip_id + stop_sequence) should generate notice",
		},
		{
			name: "duplicate composite key in calendar_dates.txt",
			files: map[string]string{
				"calendar_dates.txt": "service_id,date,exception_type\nS1,20250101,1\nS1,20250101,2", // Same service_id + date
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "Duplicate composite key (service_id + date) should generate notice",
		},
		{
			name: "duplicate composite key in shapes.txt",
			files: map[string]string{
				"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\nS1,34.05,-118.25,1\nS1,34.06,-118.26,1", // Same shape_id + shape_pt_sequence
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "Duplicate composite key (shape_id + shape_pt_sequence) should generate notice",
		},
		{
			name: "duplicate composite key in frequencies.txt",
			files: map[string]string{
				"frequencies.txt": "trip_id,start_time,end_time,headway_secs\nT1,06:00:00,22:00:00,600\nT1,06:00:00,23:00:00,900", // Same trip_id + start_time
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "Duplicate composite key (trip_id + start_time) should generate notice",
		},
		{
			name: "duplicate composite key in transfers.txt",
			files: map[string]string{
				"transfers.txt": "from_stop_id,to_stop_id,transfer_type\n1,2,0\n1,2,1", // Same from_stop_id + to_stop_id
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "Duplicate composite key (from_stop_id + to_stop_id) should generate notice",
		},
		{
			name: "multiple records in feed_info.txt",
			files: map[string]string{
				"feed_info.txt": "feed_publisher_name,feed_publisher_url,feed_lang\nMetro,http://metro.example,en\nBus,http://bus.example,en", // Multiple records
			},
			expectedNoticeCodes: []string{"multiple_records_in_single_record_file"},
			description:         "feed_info.txt should contain only one record",
		},
		{
			name: "valid single record in feed_info.txt",
			files: map[string]string{
				"feed_info.txt": "feed_publisher_name,feed_publisher_url,feed_lang\nMetro,http://metro.example,en", // Single record
			},
			expectedNoticeCodes: []string{},
			description:         "Single record in feed_info.txt should be valid",
		},
		{
			name: "multiple duplicate composite keys in same file",
			files: map[string]string{
				"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nT1,08:00:00,08:00:00,1,1\nT1,08:01:00,08:01:00,2,1\nT2,09:00:00,09:00:00,1,1\nT2,09:01:00,09:01:00,2,1", // Two pairs of duplicates
			},
			expectedNoticeCodes: []string{"duplicate_composite_key", "duplicate_composite_key"},
			description:         "Multiple duplicate composite keys should generate multiple notices",
		},
		{
			name: "duplicate composite keys across multiple files",
			files: map[string]string{
				"stop_times.txt":     "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nT1,08:00:00,08:00:00,1,1\nT1,08:01:00,08:01:00,2,1", // Same trip_id + stop_sequence
				"calendar_dates.txt": "service_id,date,exception_type\nS1,20250101,1\nS1,20250101,2",                                                   // Same service_id + date
			},
			expectedNoticeCodes: []string{"duplicate_composite_key", "duplicate_composite_key"},
			description:         "Duplicate composite keys in different files should each generate notices",
		},
		{
			name: "missing key components ignored",
			files: map[string]string{
				"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nT1,08:00:00,08:00:00,1,1\n,08:01:00,08:01:00,2,1", // Missing trip_id in second row
			},
			expectedNoticeCodes: []string{},
			description:         "Rows with missing key components should be ignored for duplication check",
		},
		{
			name: "empty key components ignored",
			files: map[string]string{
				"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles\n,Bus,http://bus.example,America/Los_Angeles", // Empty agency_id
			},
			expectedNoticeCodes: []string{},
			description:         "Rows with empty key components should be ignored for duplication check",
		},
		{
			name: "whitespace-only key components ignored",
			files: map[string]string{
				"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles\n   ,Bus,http://bus.example,America/Los_Angeles", // Whitespace agency_id
			},
			expectedNoticeCodes: []string{},
			description:         "Rows with whitespace-only key components should be ignored",
		},
		{
			name: "key values with whitespace trimmed",
			files: map[string]string{
				"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n S1 ,34.05,-118.25, 1 \nS1,34.06,-118.26,1", // Whitespace around key components
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "Key values should be trimmed before comparison",
		},
		{
			name: "files without primary keys",
			files: map[string]string{
				"attributions.txt": "attribution_id,organization_name\nA1,Metro\nA2,Bus", // No defined primary key
			},
			expectedNoticeCodes: []string{},
			description:         "Files without defined primary keys should not generate duplicate key notices",
		},
		{
			name: "missing files ignored",
			files: map[string]string{
				"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles",
			},
			expectedNoticeCodes: []string{},
			description:         "Missing files should not cause validation errors",
		},
		{
			name: "triplicate keys",
			files: map[string]string{
				"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\nS1,34.05,-118.25,1\nS1,34.06,-118.26,1\nS1,34.07,-118.27,1", // Three instances of the same composite key
			},
			expectedNoticeCodes: []string{"duplicate_composite_key", "duplicate_composite_key"},
			description:         "Three instances of same key should generate two duplicate notices",
		},
		{
			name: "valid composite keys with different combinations",
			files: map[string]string{
				"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nT1,08:00:00,08:00:00,1,1\nT1,08:01:00,08:01:00,2,2\nT2,08:00:00,08:00:00,1,1", // Different trip_id or sequence
			},
			expectedNoticeCodes: []string{},
			description:         "Different composite key combinations should be valid",
		},
		{
			name: "fare_rules.txt composite key",
			files: map[string]string{
				"fare_rules.txt": "fare_id,route_id,origin_id,destination_id,contains_id\nF1,R1,O1,D1,C1\nF1,R1,O1,D1,C1", // Duplicate all components
			},
			expectedNoticeCodes: []string{"duplicate_composite_key"},
			description:         "fare_rules.txt has complex composite key validation",
		},
		{
			name: "case sensitive key comparison",
			files: map[string]string{
				"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\nAgency1,Metro,http://metro.example,America/Los_Angeles\nagency1,Bus,http://bus.example,America/Los_Angeles", // Different case
			},
			expectedNoticeCodes: []string{},
			description:         "Key comparison should be case-sensitive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create test components
			loader := testutil.CreateTestFeedLoader(t, tt.files)
			container := notice.NewNoticeContainer()
			validator := NewDuplicateKeyValidator()
			config := gtfsvalidator.Config{}

			// Run validation
			validator.Validate(loader, container, config)

			// Get notices
			notices := container.GetNotices()

			// Check notice count
			if len(notices) != len(tt.expectedNoticeCodes) {
				t.Errorf("Expected %d notices, got %d for case: %s", len(tt.expectedNoticeCodes), len(notices), tt.description)
			}

			// Count notice codes
			expectedCodeCounts := make(map[string]int)
			for _, code := range tt.expectedNoticeCodes {
				expectedCodeCounts[code]++
			}

			actualCodeCounts := make(map[string]int)
			for _, notice := range notices {
				actualCodeCounts[notice.Code()]++
			}

			// Verify expected codes
			for expectedCode, expectedCount := range expectedCodeCounts {
				actualCount := actualCodeCounts[expectedCode]
				if actualCount != expectedCount {
					t.Errorf("Expected %d notices with code '%s', got %d", expectedCount, expectedCode, actualCount)
				}
			}

			// Check for unexpected notice codes
			for actualCode := range actualCodeCounts {
				if expectedCodeCounts[actualCode] == 0 {
					t.Errorf("Unexpected notice code: %s", actualCode)
				}
			}
		})
	}
}

func TestDuplicateKeyValidator_BuildKey(t *testing.T) {
	validator := NewDuplicateKeyValidator()

	tests := []struct {
		name        string
		rowValues   map[string]string
		keyFields   []string
		expected    string
		description string
	}{
		{
			name:        "single key field",
			rowValues:   map[string]string{"agency_id": "1", "agency_name": "Metro"},
			keyFields:   []string{"agency_id"},
			expected:    "1",
			description: "Single field key should return field value",
		},
		{
			name:        "composite key fields",
			rowValues:   map[string]string{"trip_id": "T1", "stop_sequence": "1", "stop_id": "S1"},
			keyFields:   []string{"trip_id", "stop_sequence"},
			expected:    "T1|1",
			description: "Composite key should join values with pipe separator",
		},
		{
			name:        "missing key field",
			rowValues:   map[string]string{"agency_name": "Metro"},
			keyFields:   []string{"agency_id"},
			expected:    "",
			description: "Missing key field should return empty string",
		},
		{
			name:        "empty key field value",
			rowValues:   map[string]string{"agency_id": "", "agency_name": "Metro"},
			keyFields:   []string{"agency_id"},
			expected:    "",
			description: "Empty key field value should return empty string",
		},
		{
			name:        "whitespace-only key field value",
			rowValues:   map[string]string{"agency_id": "   ", "agency_name": "Metro"},
			keyFields:   []string{"agency_id"},
			expected:    "",
			description: "Whitespace-only key field value should return empty string",
		},
		{
			name:        "key field with whitespace padding",
			rowValues:   map[string]string{"agency_id": " 1 ", "agency_name": "Metro"},
			keyFields:   []string{"agency_id"},
			expected:    "1",
			description: "Key field values should be trimmed",
		},
		{
			name:        "composite key with missing component",
			rowValues:   map[string]string{"trip_id": "T1", "stop_id": "S1"},
			keyFields:   []string{"trip_id", "stop_sequence"},
			expected:    "",
			description: "Composite key with missing component should return empty string",
		},
		{
			name:        "composite key with empty component",
			rowValues:   map[string]string{"trip_id": "T1", "stop_sequence": "", "stop_id": "S1"},
			keyFields:   []string{"trip_id", "stop_sequence"},
			expected:    "",
			description: "Composite key with empty component should return empty string",
		},
		{
			name:        "complex composite key",
			rowValues:   map[string]string{"route_id": "R1", "origin_id": "O1", "destination_id": "D1", "contains_id": "C1"},
			keyFields:   []string{"route_id", "origin_id", "destination_id", "contains_id"},
			expected:    "R1|O1|D1|C1",
			description: "Complex composite key should join all components",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create mock row
			row := &parser.CSVRow{
				RowNumber: 1,
				Values:    tt.rowValues,
			}

			result := validator.buildKey(row, tt.keyFields)
			if result != tt.expected {
				t.Errorf("Expected key '%s', got '%s' for %s", tt.expected, result, tt.description)
			}
		})
	}
}

func TestDuplicateKeyValidator_ValidateFileKeys(t *testing.T) {
	tests := []struct {
		name            string
		filename        string
		content         string
		config          FileKeyConfig
		expectedNotices int
		description     string
	}{
		{
			name:            "no duplicates",
			filename:        "agency.txt",
			content:         "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles\n2,Bus,http://bus.example,America/Los_Angeles",
			config:          FileKeyConfig{"agency.txt", []string{"agency_id"}, false},
			expectedNotices: 0,
			description:     "Unique keys should not generate notices",
		},
		{
			name:            "single field duplicate",
			filename:        "agency.txt",
			content:         "agency_id,agency_name,agency_url,agency_timezone\n1,Metro,http://metro.example,America/Los_Angeles\n1,Bus,http://bus.example,America/Los_Angeles",
			config:          FileKeyConfig{"agency.txt", []string{"agency_id"}, false},
			expectedNotices: 1,
			description:     "Duplicate single key should generate one notice",
		},
		{
			name:            "composite key duplicate",
			filename:        "stop_times.txt",
			content:         "trip_id,arrival_time,departure_time,stop_id,stop_sequence\nT1,08:00:00,08:00:00,1,1\nT1,08:01:00,08:01:00,2,1",
			config:          FileKeyConfig{"stop_times.txt", []string{"trip_id", "stop_sequence"}, true},
			expectedNotices: 1,
			description:     "Duplicate composite key should generate one notice",
		},
		{
			name:            "no key fields defined",
			filename:        "custom.txt",
			content:         "field1,field2\nvalue1,value2\nvalue1,value3",
			config:          FileKeyConfig{"custom.txt", []string{}, false},
			expectedNotices: 0,
			description:     "Files without key fields should not generate notices",
		},
		{
			name:            "feed_info multiple records",
			filename:        "feed_info.txt",
			content:         "feed_publisher_name,feed_publisher_url,feed_lang\nMetro,http://metro.example,en\nBus,http://bus.example,en",
			config:          FileKeyConfig{"feed_info.txt", []string{}, false},
			expectedNotices: 1,
			description:     "Multiple records in feed_info.txt should generate notice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{tt.filename: tt.content}
			loader := testutil.CreateTestFeedLoader(t, files)
			container := notice.NewNoticeContainer()
			validator := NewDuplicateKeyValidator()

			validator.validateFileKeys(loader, container, tt.config)

			notices := container.GetNotices()
			if len(notices) != tt.expectedNotices {
				t.Errorf("Expected %d notices, got %d for %s", tt.expectedNotices, len(notices), tt.description)
			}
		})
	}
}

func TestDuplicateKeyValidator_ValidateSingleRecordFile(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedNotices int
		description     string
	}{
		{
			name:            "single record",
			content:         "feed_publisher_name,feed_publisher_url,feed_lang\nMetro,http://metro.example,en",
			expectedNotices: 0,
			description:     "Single record should be valid",
		},
		{
			name:            "multiple records",
			content:         "feed_publisher_name,feed_publisher_url,feed_lang\nMetro,http://metro.example,en\nBus,http://bus.example,en",
			expectedNotices: 1,
			description:     "Multiple records should generate notice",
		},
		{
			name:            "empty file",
			content:         "feed_publisher_name,feed_publisher_url,feed_lang",
			expectedNotices: 0,
			description:     "Empty file (headers only) should be valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := map[string]string{"feed_info.txt": tt.content}
			loader := testutil.CreateTestFeedLoader(t, files)
			reader, _ := loader.GetFile("feed_info.txt")
			defer func() {
				if closeErr := reader.Close(); closeErr != nil {
					log.Printf("Warning: failed to close reader %v", closeErr)
				}
			}()
			csvFile, _ := parser.NewCSVFile(reader, "feed_info.txt")

			container := notice.NewNoticeContainer()
			validator := NewDuplicateKeyValidator()

			validator.validateSingleRecordFile(container, csvFile, "feed_info.txt")

			notices := container.GetNotices()
			if len(notices) != tt.expectedNotices {
				t.Errorf("Expected %d notices, got %d for %s", tt.expectedNotices, len(notices), tt.description)
			}

			if tt.expectedNotices > 0 && len(notices) > 0 {
				notice := notices[0]
				if notice.Code() != "multiple_records_in_single_record_file" {
					t.Errorf("Expected notice code 'multiple_records_in_single_record_file', got '%s'", notice.Code())
				}
			}
		})
	}
}

func TestDuplicateKeyValidator_FileKeyConfigs(t *testing.T) {
	// Test that this validator's composite-key files (plus feed_info.txt's
	// single-record check) have appropriate key configurations.
	// Single-column-key files (agency.txt, stops.txt, routes.txt, trips.txt,
	// calendar.txt, fare_attributes.txt, pathways.txt, levels.txt) are
	// entity.PrimaryKeyValidator's responsibility and are covered there.

	// We can't directly access the configs, but we can verify behavior indirectly
	// by testing files that should have key validation
	expectedKeyFiles := map[string]bool{
		"stop_times.txt":     true,
		"calendar_dates.txt": true,
		"fare_rules.txt":     true,
		"shapes.txt":         true,
		"frequencies.txt":    true,
		"transfers.txt":      true,
		"feed_info.txt":      true, // Special case - single record validation
	}

	// Test that validation runs without errors for these files
	for filename := range expectedKeyFiles {
		t.Run(filename, func(t *testing.T) {
			// This test mainly ensures our file configurations are complete
			// The actual validation logic is tested in other test cases
			if filename == "feed_info.txt" {
				// Special case for feed_info.txt
				return
			}
			// If we get here without panicking, the configuration exists
		})
	}
}

func TestDuplicateKeyValidator_New(t *testing.T) {
	validator := NewDuplicateKeyValidator()
	if validator == nil {
		t.Error("NewDuplicateKeyValidator() returned nil")
	}
}
