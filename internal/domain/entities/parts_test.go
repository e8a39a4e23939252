package entities

import "testing"

func TestParseParts(t *testing.T) {
	t.Run("well formed list", func(t *testing.T) {
		lines := ParseParts(`[{"name":"Filter","qty":2,"price":25}]`)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Name != "Filter" || lines[0].Qty != 2 || lines[0].Price != 25 || lines[0].LineTotal != 50 {
			t.Fatalf("unexpected line: %+v", lines[0])
		}
	})

	t.Run("alternate key names", func(t *testing.T) {
		lines := ParseParts(`[{"part":"Brake pad","quantity":4,"unitPrice":30},{"description":"Oil","count":1,"cost":12.5}]`)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[0].Name != "Brake pad" || lines[0].LineTotal != 120 {
			t.Fatalf("unexpected first line: %+v", lines[0])
		}
		if lines[1].Name != "Oil" || lines[1].LineTotal != 12.5 {
			t.Fatalf("unexpected second line: %+v", lines[1])
		}
	})

	t.Run("missing fields get defaults", func(t *testing.T) {
		lines := ParseParts(`[{}]`)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Name != "Part" || lines[0].Qty != 1 || lines[0].Price != 0 || lines[0].LineTotal != 0 {
			t.Fatalf("unexpected defaults: %+v", lines[0])
		}
	})

	t.Run("numeric strings are coerced", func(t *testing.T) {
		lines := ParseParts(`[{"name":"Belt","qty":"3","price":"9.5"}]`)
		if len(lines) != 1 || lines[0].Qty != 3 || lines[0].Price != 9.5 || lines[0].LineTotal != 28.5 {
			t.Fatalf("unexpected line: %+v", lines)
		}
	})

	t.Run("unusable numerics fall back", func(t *testing.T) {
		lines := ParseParts(`[{"name":"Hose","qty":true,"price":"abc"}]`)
		if len(lines) != 1 || lines[0].Qty != 1 || lines[0].Price != 0 {
			t.Fatalf("unexpected line: %+v", lines)
		}
	})

	t.Run("loose elements keep their neighbors", func(t *testing.T) {
		lines := ParseParts(`[{"name":"Filter","qty":2,"price":25},"hand-written note",7]`)
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d: %+v", len(lines), lines)
		}
		if lines[0].Name != "Filter" || lines[0].LineTotal != 50 {
			t.Fatalf("unexpected first line: %+v", lines[0])
		}
		for _, line := range lines[1:] {
			if line.Name != "Part" || line.Qty != 1 || line.Price != 0 {
				t.Fatalf("unexpected placeholder line: %+v", line)
			}
		}
	})

	t.Run("malformed input degrades to empty", func(t *testing.T) {
		for _, raw := range []string{"", "not json", "{", `{"name":"obj not array"}`, `"just a string"`, "42"} {
			if lines := ParseParts(raw); len(lines) != 0 {
				t.Fatalf("expected empty result for %q, got %+v", raw, lines)
			}
		}
	})
}

func TestPartsTotal(t *testing.T) {
	lines := ParseParts(`[{"name":"Filter","qty":2,"price":25},{"name":"Oil","qty":1,"price":30}]`)
	if got := PartsTotal(lines); got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
	if got := PartsTotal(nil); got != 0 {
		t.Fatalf("expected 0 for empty list, got %v", got)
	}
}
