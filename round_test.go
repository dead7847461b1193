package nfc

import (
	"encoding/json"
	"testing"
)

const sampleRoundJSON = `{
	"round": 7956,
	"start": "2021-02-15T23:47:18+00:00",
	"timestamp": "2021-02-16T23:47:18+00:00",
	"lastChange": "2021-02-16T10:12:00+00:00",
	"pirates": [[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16],[17,18,19,20]],
	"openingOdds": [[1,2,13,3,13],[1,4,4,3,5],[1,2,6,13,13],[1,7,2,13,4],[1,13,13,2,3]],
	"currentOdds": [[1,2,3,4,5],[1,13,13,13,13],[1,2,6,13,13],[1,8,2,13,4],[1,13,13,2,3]],
	"winners": [0,0,0,0,0],
	"foods": [[1,2,3,4,5,6,7,8,9,10],[1,2,3,4,5,6,7,8,9,10],[1,2,3,4,5,6,7,8,9,10],[1,2,3,4,5,6,7,8,9,10],[1,2,3,4,5,6,7,8,9,10]],
	"changes": [
		{"t": "2021-02-16T08:47:18-08:00", "old": 4, "new": 5, "arena": 1, "pirate": 1},
		{"t": "2021-02-16T09:30:00-08:00", "old": 5, "new": 13, "arena": 1, "p": 1}
	]
}`

func TestParseRoundData(t *testing.T) {
	rd, err := ParseRoundData([]byte(sampleRoundJSON))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if rd.Round != 7956 {
		t.Fatalf("expected round 7956 got %d", rd.Round)
	}
	if rd.Pirates[4][3] != 20 {
		t.Fatalf("expected pirate 20 got %d", rd.Pirates[4][3])
	}
	if rd.CurrentOdds[0][0] != 1 || rd.OpeningOdds[0][0] != 1 {
		t.Fatalf("expected column 0 pinned to 1")
	}

	// Both wire shapes of an odds change resolve to the same field.
	if len(rd.Changes) != 2 {
		t.Fatalf("expected 2 changes got %d", len(rd.Changes))
	}
	for i, change := range rd.Changes {
		if change.Pirate != 1 || change.Arena != 1 {
			t.Fatalf("change %d: expected pirate 1 arena 1 got %+v", i, change)
		}
	}
}

func TestParseRoundDataRejects(t *testing.T) {
	testcases := []struct {
		name    string
		payload string
	}{
		{"Malformed JSON", `{"round": `},
		{"Odds outside 2..13", `{"round": 1,
			"pirates": [[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16],[17,18,19,20]],
			"openingOdds": [[1,2,14,3,13],[1,4,4,3,5],[1,2,6,13,13],[1,7,2,13,4],[1,13,13,2,3]],
			"currentOdds": [[1,2,3,4,5],[1,13,13,13,13],[1,2,6,13,13],[1,8,2,13,4],[1,13,13,2,3]],
			"winners": [0,0,0,0,0]}`},
		{"Winner outside 0..4", `{"round": 1,
			"pirates": [[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16],[17,18,19,20]],
			"openingOdds": [[1,2,13,3,13],[1,4,4,3,5],[1,2,6,13,13],[1,7,2,13,4],[1,13,13,2,3]],
			"currentOdds": [[1,2,3,4,5],[1,13,13,13,13],[1,2,6,13,13],[1,8,2,13,4],[1,13,13,2,3]],
			"winners": [5,0,0,0,0]}`},
		{"Change without pirate field", `{"round": 1,
			"pirates": [[1,2,3,4],[5,6,7,8],[9,10,11,12],[13,14,15,16],[17,18,19,20]],
			"openingOdds": [[1,2,13,3,13],[1,4,4,3,5],[1,2,6,13,13],[1,7,2,13,4],[1,13,13,2,3]],
			"currentOdds": [[1,2,3,4,5],[1,13,13,13,13],[1,2,6,13,13],[1,8,2,13,4],[1,13,13,2,3]],
			"winners": [0,0,0,0,0],
			"changes": [{"t": "2021-02-16T08:47:18-08:00", "old": 4, "new": 5, "arena": 1}]}`},
	}

	for _, tc := range testcases {
		if _, err := ParseRoundData([]byte(tc.payload)); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestRoundDataJSONRoundTrip(t *testing.T) {
	rd, err := ParseRoundData([]byte(sampleRoundJSON))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	encoded, err := rd.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	again, err := ParseRoundData(encoded)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if rd.Round != again.Round || rd.Pirates != again.Pirates ||
		rd.CurrentOdds != again.CurrentOdds || rd.OpeningOdds != again.OpeningOdds ||
		rd.Winners != again.Winners || *rd.Foods != *again.Foods ||
		len(rd.Changes) != len(again.Changes) {
		t.Fatalf("expected an identical round after re-encoding")
	}
	for i := range rd.Changes {
		if rd.Changes[i] != again.Changes[i] {
			t.Fatalf("change %d: expected %+v got %+v", i, rd.Changes[i], again.Changes[i])
		}
	}
}

// TestOddsChangeWireShapes pins the v2 field name on output.
func TestOddsChangeWireShapes(t *testing.T) {
	encoded, err := json.Marshal(OddsChange{T: "2021-02-16T08:47:18-08:00", Old: 4, New: 5, Arena: 1, Pirate: 2})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var wire map[string]any
	if err = json.Unmarshal(encoded, &wire); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := wire["p"]; !ok {
		t.Fatalf("expected the v2 field name, got %s", encoded)
	}
	if _, ok := wire["pirate"]; ok {
		t.Fatalf("did not expect the v1 field name, got %s", encoded)
	}
}
