package parser

import (
	"strings"
	"testing"
)

func TestBuildTable_SingleKeyNoDuplicates(t *testing.T) {
	csvFile, err := NewCSVFile(strings.NewReader(
		"agency_id,agency_name\n1,Metro\n2,Bus"), "agency.txt")
	if err != nil {
		t.Fatalf("NewCSVFile: %v", err)
	}

	table, err := BuildTable(csvFile, []string{"agency_id"})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if dups := table.Duplicates(); len(dups) != 0 {
		t.Errorf("expected no duplicates, got %v", dups)
	}

	idxs, ok := table.Lookup("1")
	if !ok || len(idxs) != 1 {
		t.Errorf("expected a single row for key 1, got %v", idxs)
	}
}

func TestBuildTable_DuplicateSingleKey(t *testing.T) {
	csvFile, err := NewCSVFile(strings.NewReader(
		"agency_id,agency_name\n1,Metro\n1,Bus\n1,Rail"), "agency.txt")
	if err != nil {
		t.Fatalf("NewCSVFile: %v", err)
	}

	table, err := BuildTable(csvFile, []string{"agency_id"})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	dups := table.Duplicates()
	if len(dups) != 1 {
		t.Fatalf("expected 1 duplicated key, got %d", len(dups))
	}
	idxs := dups["1"]
	if len(idxs) != 3 {
		t.Errorf("expected 3 rows sharing key 1, got %d", len(idxs))
	}
	if table.Rows[idxs[0]].RowNumber != 2 {
		t.Errorf("expected first occurrence at row 2, got %d", table.Rows[idxs[0]].RowNumber)
	}
}

func TestBuildTable_CompositeKey(t *testing.T) {
	csvFile, err := NewCSVFile(strings.NewReader(
		"trip_id,stop_sequence,stop_id\nT1,1,S1\nT1,2,S2\nT2,1,S1"), "stop_times.txt")
	if err != nil {
		t.Fatalf("NewCSVFile: %v", err)
	}

	table, err := BuildTable(csvFile, []string{"trip_id", "stop_sequence"})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	if len(table.Duplicates()) != 0 {
		t.Errorf("expected no duplicate composite keys")
	}
	if _, ok := table.Lookup("T1|1"); !ok {
		t.Errorf("expected lookup T1|1 to succeed")
	}
}

func TestTable_SecondaryIndex(t *testing.T) {
	csvFile, err := NewCSVFile(strings.NewReader(
		"stop_id,zone_id\nS1,Z1\nS2,Z2\nS3,Z1"), "stops.txt")
	if err != nil {
		t.Fatalf("NewCSVFile: %v", err)
	}

	table, err := BuildTable(csvFile, []string{"stop_id"})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	table.BuildIndex("zone", "zone_id")

	if !table.HasValue("zone", "Z1") {
		t.Errorf("expected zone index to contain Z1")
	}
	if table.HasValue("zone", "Z9") {
		t.Errorf("did not expect zone index to contain Z9")
	}
	if table.HasValue("missing", "Z1") {
		t.Errorf("expected unbuilt index to report false")
	}
}

func TestFeed_HasReference(t *testing.T) {
	stopsCSV, err := NewCSVFile(strings.NewReader("stop_id\nS1\nS2"), "stops.txt")
	if err != nil {
		t.Fatalf("NewCSVFile: %v", err)
	}
	stopsTable, err := BuildTable(stopsCSV, []string{"stop_id"})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	stopsTable.BuildIndex("stop_id", "stop_id")

	feed := NewFeed(map[string]*Table{"stops.txt": stopsTable})

	if !feed.HasReference("stops.txt", "stop_id", "S1") {
		t.Errorf("expected S1 to be a known stop")
	}
	if feed.HasReference("stops.txt", "stop_id", "S9") {
		t.Errorf("did not expect S9 to be a known stop")
	}
	if !feed.HasReference("missing.txt", "stop_id", "anything") {
		t.Errorf("expected lookup against a table that was never built to fail open")
	}
}
