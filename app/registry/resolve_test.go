package registry

import "testing"

func TestResolveMatchesCasingAndPunctuationVariants(t *testing.T) {
	row := map[string]any{
		"REGNO":    "24CS0001",
		"reg_no":   "shadowed",
		"Name":     "Jane Doe",
		"10th_pct": 91.2,
	}

	cases := []struct {
		name       string
		candidates []string
		want       any
		wantOK     bool
	}{
		{"exact", []string{"Name"}, "Jane Doe", true},
		{"case insensitive", []string{"name"}, "Jane Doe", true},
		{"punctuation stripped", []string{"na-me"}, "Jane Doe", true},
		{"numeric prefix key", []string{"10th-pct"}, 91.2, true},
		{"absent", []string{"cgpa"}, nil, false},
		{"no partial match", []string{"reg"}, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Resolve(row, tc.candidates...)
			if ok != tc.wantOK {
				t.Fatalf("Resolve(%v) ok = %v, want %v", tc.candidates, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("Resolve(%v) = %v, want %v", tc.candidates, got, tc.want)
			}
		})
	}
}

func TestResolveCandidatePriorityOrder(t *testing.T) {
	row := map[string]any{
		"cgpa":         "old",
		"cgpa_overall": "new",
	}

	got, ok := Resolve(row, "cgpa_overall", "cgpa")
	if !ok || got != "new" {
		t.Fatalf("got %v (ok=%v), want first candidate to win", got, ok)
	}

	got, ok = Resolve(row, "cgpa", "cgpa_overall")
	if !ok || got != "old" {
		t.Fatalf("got %v (ok=%v), want caller order respected", got, ok)
	}
}

func TestResolveDeterministicAcrossRuns(t *testing.T) {
	// REG_NO and RegNo normalize to the same key; sorted row-key order must
	// make the winner stable no matter how map iteration behaves.
	row := map[string]any{
		"REG_NO": "a",
		"RegNo":  "b",
	}
	first, _ := Resolve(row, "reg_no")
	for i := 0; i < 50; i++ {
		got, ok := Resolve(row, "reg_no")
		if !ok || got != first {
			t.Fatalf("run %d: got %v, want stable %v", i, got, first)
		}
	}
}

func TestResolveEmptyRow(t *testing.T) {
	if _, ok := Resolve(nil, "reg_no"); ok {
		t.Fatal("nil row must resolve to absent")
	}
	if _, ok := Resolve(map[string]any{}, "reg_no"); ok {
		t.Fatal("empty row must resolve to absent")
	}
}
