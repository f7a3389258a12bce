package gedcom

import (
	"strings"
	"testing"
	"time"
)

func buildFrom(t *testing.T, input string) *DraftSet {
	t.Helper()
	records, err := ReadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	return Build(records)
}

func TestBuild_Individual(t *testing.T) {
	set := buildFrom(t, `0 @I1@ INDI
1 NAME John /Smith/
1 SEX M
1 BIRT
2 DATE 2 JAN 1900
2 PLAC Boston
1 DEAT
2 DATE 1970
1 FAMS @F1@
1 FAMC @F2@`)

	indi, ok := set.Individuals["I1"]
	if !ok {
		t.Fatal("I1 not built")
	}
	if indi.Name != "John Smith" {
		t.Errorf("surname slashes should be stripped, got %q", indi.Name)
	}
	if indi.Sex != SexMale {
		t.Errorf("Sex = %v, want male", indi.Sex)
	}
	if indi.Birth == nil || indi.Birth.Date != (Date{Year: 1900, Month: time.January, Day: 2}) {
		t.Errorf("unexpected birth: %+v", indi.Birth)
	}
	if indi.Birth.Place != "Boston" {
		t.Errorf("Place = %q", indi.Birth.Place)
	}
	if indi.Death == nil || indi.Death.Date.Year != 1970 {
		t.Errorf("unexpected death: %+v", indi.Death)
	}
	if len(indi.SpouseFamilyIDs) != 1 || indi.SpouseFamilyIDs[0] != "F1" {
		t.Errorf("FAMS = %v", indi.SpouseFamilyIDs)
	}
	if len(indi.ParentFamilyIDs) != 1 || indi.ParentFamilyIDs[0] != "F2" {
		t.Errorf("FAMC = %v", indi.ParentFamilyIDs)
	}
}

func TestBuild_FamilyChildOrder(t *testing.T) {
	set := buildFrom(t, `0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I5@
1 CHIL @I3@
1 CHIL @I4@
1 MARR
2 DATE JUN 1925`)

	fam, ok := set.Families["F1"]
	if !ok {
		t.Fatal("F1 not built")
	}
	if fam.HusbandID != "I1" || fam.WifeID != "I2" {
		t.Errorf("spouses = %q/%q", fam.HusbandID, fam.WifeID)
	}
	want := []string{"I5", "I3", "I4"}
	if len(fam.ChildIDs) != len(want) {
		t.Fatalf("ChildIDs = %v", fam.ChildIDs)
	}
	for i, id := range want {
		if fam.ChildIDs[i] != id {
			t.Errorf("child %d = %q, want %q (input order must hold)", i, fam.ChildIDs[i], id)
		}
	}
	if fam.Marriage == nil || fam.Marriage.Date != (Date{Year: 1925, Month: time.June}) {
		t.Errorf("unexpected marriage: %+v", fam.Marriage)
	}
}

func TestBuild_UnknownTagsSkipped(t *testing.T) {
	set := buildFrom(t, `0 HEAD
1 SOUR test
0 @I1@ INDI
1 NAME Jane /Doe/
1 OCCU Carpenter
1 BIRT
2 DATE 1900
2 NOTE uncertain
0 TRLR`)

	if len(set.Individuals) != 1 {
		t.Fatalf("expected one individual, got %d", len(set.Individuals))
	}
	indi := set.Individuals["I1"]
	if indi.Name != "Jane Doe" || indi.Birth == nil || indi.Birth.Date.Year != 1900 {
		t.Errorf("known fields should survive unknown neighbors: %+v", indi)
	}
}

func TestBuild_DuplicateIDKeepsFirst(t *testing.T) {
	set := buildFrom(t, `0 @I1@ INDI
1 NAME First /Entry/
0 @I1@ INDI
1 NAME Second /Entry/`)

	if set.Individuals["I1"].Name != "First Entry" {
		t.Errorf("first record should win, got %q", set.Individuals["I1"].Name)
	}
	if len(set.IndividualOrder) != 1 {
		t.Errorf("duplicate must not reappear in order: %v", set.IndividualOrder)
	}
	if len(set.Defects) != 1 || set.Defects[0].Kind != DefectDuplicateID || set.Defects[0].Subject != "I1" {
		t.Errorf("expected a duplicate-id defect, got %+v", set.Defects)
	}
}

func TestBuild_MalformedDateIsAbsent(t *testing.T) {
	set := buildFrom(t, `0 @I1@ INDI
1 BIRT
2 DATE SOMEDAY`)

	if d := set.Individuals["I1"].BirthDate(); !d.IsZero() {
		t.Errorf("malformed date should parse as absent, got %v", d)
	}
}
