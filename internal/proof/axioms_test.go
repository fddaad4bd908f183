package proof

import "testing"

func TestAxiomSchemas(t *testing.T) {
	axioms := Axioms()
	if len(axioms) != 3 {
		t.Fatalf("Axioms() returned %d schemas, want 3", len(axioms))
	}
	want := []struct {
		name   string
		schema string
	}{
		{"AX1", "cPcQP"},
		{"AX2", "ccScPQccSPcSQ"},
		{"AX3", "ccnPnQcQP"},
	}
	for i, w := range want {
		if axioms[i].Name != w.name {
			t.Errorf("axiom %d name = %q, want %q", i, axioms[i].Name, w.name)
		}
		if got := axioms[i].Schema.String(); got != w.schema {
			t.Errorf("axiom %d schema = %s, want %s", i, got, w.schema)
		}
	}
}

func TestEveryAxiomSchemaIsItsOwnInstance(t *testing.T) {
	inputs := []string{
		"1 cPcQP AX1\n",
		"1 ccScPQccSPcSQ AX2\n",
		"1 ccnPnQcQP AX3\n",
	}
	for _, input := range inputs {
		report := NewChecker(DefaultConfig()).Verify(input)
		if report.Status != StatusValid {
			t.Errorf("Verify(%q) = %v, want Valid", input, report.Status)
		}
	}
}
