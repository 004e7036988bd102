package controller

import "testing"

func TestCallableItem_FilterValue(t *testing.T) {
	item := callableItem{label: "calc.go:3 Add → AddArgs", variants: 2}
	if got := item.FilterValue(); got != item.label {
		t.Fatalf("FilterValue() = %q, want %q", got, item.label)
	}
}

func TestFileResult_FilterValue(t *testing.T) {
	item := fileResult{path: "calc.go", status: "cached"}
	if got := item.FilterValue(); got != "calc.go cached" {
		t.Fatalf("FilterValue() = %q, want %q", got, "calc.go cached")
	}
}
