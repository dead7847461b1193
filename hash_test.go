package nfc

import "testing"

func TestBetsHashValue(t *testing.T) {
	testcases := []struct {
		name        string
		betsIndices []BetIndices
		expected    string
	}{
		{"Single bet, odd pad", []BetIndices{{1, 0, 0, 0, 0}}, "faa"},
		{"Two full bets", []BetIndices{{1, 2, 3, 4, 1}, {2, 2, 2, 2, 2}}, "hthmm"},
		{"No bets", nil, ""},
	}

	for _, tc := range testcases {
		got := BetsHashValue(tc.betsIndices)
		if got != tc.expected {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.expected, got)
		}
	}
}

func TestBetsHashToBetIndices(t *testing.T) {
	testcases := []struct {
		name     string
		betsHash string
		expected []BetIndices
	}{
		{"Single bet, padded chunk dropped", "faa", []BetIndices{{1, 0, 0, 0, 0}}},
		{"Two full bets", "hthmm", []BetIndices{{1, 2, 3, 4, 1}, {2, 2, 2, 2, 2}}},
	}

	for _, tc := range testcases {
		got, err := BetsHashToBetIndices(tc.betsHash)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if len(got) != len(tc.expected) {
			t.Fatalf("%s: expected %d bets got %d", tc.name, len(tc.expected), len(got))
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Fatalf("%s: expected %v got %v", tc.name, tc.expected[i], got[i])
			}
		}
	}

	if _, err := BetsHashToBetIndices("f!a"); err == nil {
		t.Fatalf("expected an error for a letter outside a..y")
	}
}

func TestBetsHashRoundTrip(t *testing.T) {
	betsIndices := []BetIndices{
		{1, 2, 3, 4, 1},
		{0, 0, 2, 0, 0},
		{4, 4, 4, 4, 4},
		{1, 0, 3, 0, 2},
	}

	decoded, err := BetsHashToBetIndices(BetsHashValue(betsIndices))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(decoded) != len(betsIndices) {
		t.Fatalf("expected %d bets got %d", len(betsIndices), len(decoded))
	}
	for i := range decoded {
		if decoded[i] != betsIndices[i] {
			t.Fatalf("expected %v got %v", betsIndices[i], decoded[i])
		}
	}
}

func TestBetsHashToBetsCount(t *testing.T) {
	cnt, err := BetsHashToBetsCount("faa")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cnt != 1 {
		t.Fatalf("expected 1 got %d", cnt)
	}
}

func TestBetAmountsToAmountsHash(t *testing.T) {
	amount := uint32(8000)

	// (8000 % 70304) + 70304 = 78304 = 28*52^2 + 49*52 + 44 -> "CXS".
	got := BetAmountsToAmountsHash([]*uint32{&amount})
	if got != "CXS" {
		t.Fatalf("expected %q got %q", "CXS", got)
	}
}

func TestAmountsHashRoundTrip(t *testing.T) {
	testcases := []struct {
		name     string
		amounts  []*uint32
		expected []*uint32
	}{
		{"In range", amounts(50, 8000, 70303), amounts(50, 8000, 70303)},
		// Entries below BetAmountMin, and nil entries, both normalize to 0.
		{"Below min", amounts(30), amounts(0)},
		{"Nil entry", []*uint32{nil}, amounts(0)},
	}

	for _, tc := range testcases {
		got, err := AmountsHashToBetAmounts(BetAmountsToAmountsHash(tc.amounts))
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if len(got) != len(tc.expected) {
			t.Fatalf("%s: expected %d amounts got %d", tc.name, len(tc.expected), len(got))
		}
		for i := range got {
			if got[i] == nil || *got[i] != *tc.expected[i] {
				t.Fatalf("%s: expected %d got %v", tc.name, *tc.expected[i], got[i])
			}
		}
	}
}

func TestAmountsHashToBetAmounts(t *testing.T) {
	// "aaa" encodes 0, which is below BetAmountMax and therefore omitted.
	got, err := AmountsHashToBetAmounts("aaa")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 1 || got[0] != nil {
		t.Fatalf("expected a single nil amount got %v", got)
	}

	if _, err = AmountsHashToBetAmounts("ab"); err == nil {
		t.Fatalf("expected an error for a truncated hash")
	}
	if _, err = AmountsHashToBetAmounts("a!a"); err == nil {
		t.Fatalf("expected an error for a letter outside the alphabet")
	}
}

// amounts builds a slice of amount pointers from literals.
func amounts(values ...uint32) []*uint32 {
	out := make([]*uint32, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}
