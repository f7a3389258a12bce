package gedcom

import (
	"strings"
	"testing"
)

func TestReadRecords(t *testing.T) {
	input := `0 @I1@ INDI
1 NAME John /Smith/
1 BIRT
2 DATE 2 JAN 1900
0 @F1@ FAM
1 HUSB @I1@
0 TRLR`

	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("expected 7 records, got %d", len(records))
	}

	first := records[0]
	if first.Level != 0 || first.XRef != "I1" || first.Tag != "INDI" {
		t.Errorf("unexpected first record: %+v", first)
	}
	name := records[1]
	if name.Level != 1 || name.Tag != "NAME" || name.Value != "John /Smith/" {
		t.Errorf("unexpected NAME record: %+v", name)
	}
	husb := records[5]
	if husb.Tag != "HUSB" || husb.Value != "@I1@" {
		t.Errorf("expected raw HUSB value, got %+v", husb)
	}
}

func TestReadRecords_SkipsMalformedLines(t *testing.T) {
	input := `0 @I1@ INDI
not a gedcom line
x NAME broken level
1 NAME Jane /Doe/

0 TRLR`

	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}
	if records[1].Tag != "NAME" || records[1].Value != "Jane /Doe/" {
		t.Errorf("expected NAME to survive malformed neighbors, got %+v", records[1])
	}
}

func TestReadRecords_LineNumbers(t *testing.T) {
	input := "0 @I1@ INDI\nbad\n1 SEX M\n"
	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if records[0].Line != 1 || records[1].Line != 3 {
		t.Errorf("line numbers should track the source file, got %d and %d", records[0].Line, records[1].Line)
	}
}
