package main

import (
	"testing"

	"brightpix/frame"
	"brightpix/topk"
)

func TestBuildReport(t *testing.T) {
	f, err := frame.New(4, 8)
	if err != nil {
		t.Fatal(err)
	}

	results := []topk.Result{
		{Pos: 13, Value: 200},
		{Pos: 0, Value: 150},
	}
	df := buildReport(f, results)

	if len(df.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(df.Rows))
	}
	if df.Rows[0].Y != 1 || df.Rows[0].X != 5 {
		t.Errorf("pos 13 decoded to (%d,%d), want (1,5)", df.Rows[0].Y, df.Rows[0].X)
	}
	if df.Rows[1].Y != 0 || df.Rows[1].X != 0 {
		t.Errorf("pos 0 decoded to (%d,%d), want (0,0)", df.Rows[1].Y, df.Rows[1].X)
	}
	df.PrintTable()
}
