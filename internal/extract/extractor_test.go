package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avyukov/cardledger/internal/domain"
	"github.com/avyukov/cardledger/internal/logger"
)

// MockModelClient implements ModelClient with a pluggable function.
type MockModelClient struct {
	GenerateJSONFunc func(ctx context.Context, document []byte, prompt string) (string, error)
	calls            int
}

func (m *MockModelClient) GenerateJSON(ctx context.Context, document []byte, prompt string) (string, error) {
	m.calls++
	return m.GenerateJSONFunc(ctx, document, prompt)
}

func writePDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatalf("writing stub document: %v", err)
	}
	return path
}

func testExtractor(client ModelClient) *Extractor {
	return NewExtractor(client, logger.NewWithWriter(os.Stderr))
}

func TestExtractDocument_Success(t *testing.T) {
	mock := &MockModelClient{
		GenerateJSONFunc: func(ctx context.Context, document []byte, prompt string) (string, error) {
			return `[
				{"date": "2025-03-01", "description": "SHELL OIL 12345", "amount": 12.50, "category": "Gas"},
				{"date": "2025-03-02", "description": "NETFLIX.COM", "amount": 15.99, "category": "Entertainment"}
			]`, nil
		},
	}

	path := writePDF(t, t.TempDir(), "statement.pdf")
	records, err := testExtractor(mock).ExtractDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractDocument failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Description != "SHELL OIL 12345" || records[0].Amount != 12.50 {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[0].SourceFile != "statement.pdf" {
		t.Errorf("SourceFile = %q, want statement.pdf", records[0].SourceFile)
	}
	if mock.calls != 1 {
		t.Errorf("model called %d times, want 1", mock.calls)
	}
}

func TestExtractDocument_TruncatedOutputRepaired(t *testing.T) {
	mock := &MockModelClient{
		GenerateJSONFunc: func(ctx context.Context, document []byte, prompt string) (string, error) {
			return `[{"date": "2025-03-01", "description": "WALMART STORE #112", "amount": 67.89, "category": "Merchandise`, nil
		},
	}

	path := writePDF(t, t.TempDir(), "statement.pdf")
	records, err := testExtractor(mock).ExtractDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractDocument failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Category != "Merchandise" {
		t.Errorf("Category = %q, want Merchandise", records[0].Category)
	}
	if mock.calls != 1 {
		t.Errorf("model called %d times, want 1 (repair must not trigger a retry)", mock.calls)
	}
}

func TestExtractDocument_MalformedTwice(t *testing.T) {
	mock := &MockModelClient{
		GenerateJSONFunc: func(ctx context.Context, document []byte, prompt string) (string, error) {
			return "I could not find any transactions in this document.", nil
		},
	}

	path := writePDF(t, t.TempDir(), "statement.pdf")
	_, err := testExtractor(mock).ExtractDocument(context.Background(), path)

	var malformed *domain.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want MalformedOutputError", err)
	}
	if malformed.Document != "statement.pdf" {
		t.Errorf("Document = %q, want statement.pdf", malformed.Document)
	}
	if mock.calls != 2 {
		t.Errorf("model called %d times, want exactly 2", mock.calls)
	}
}

func TestExtractDocument_ModelErrorNotRetried(t *testing.T) {
	mock := &MockModelClient{
		GenerateJSONFunc: func(ctx context.Context, document []byte, prompt string) (string, error) {
			return "", errors.New("429 quota exceeded")
		},
	}

	path := writePDF(t, t.TempDir(), "statement.pdf")
	_, err := testExtractor(mock).ExtractDocument(context.Background(), path)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var malformed *domain.MalformedOutputError
	if errors.As(err, &malformed) {
		t.Error("model call errors must not be reported as malformed output")
	}
	if mock.calls != 1 {
		t.Errorf("model called %d times, want 1", mock.calls)
	}
}

func TestProcessFolders(t *testing.T) {
	root := t.TempDir()
	dirA := filepath.Join(root, "2040")
	dirB := filepath.Join(root, "7557")
	for _, d := range []string{dirA, dirB} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	writePDF(t, dirA, "jan.pdf")
	writePDF(t, dirA, "feb.pdf")
	writePDF(t, dirB, "jan.pdf")

	mock := &MockModelClient{
		GenerateJSONFunc: func(ctx context.Context, document []byte, prompt string) (string, error) {
			return `[{"date": "2025-01-15", "description": "KROGER #123", "amount": 40.00, "category": "Merchandise"}]`, nil
		},
	}

	records, err := testExtractor(mock).ProcessFolders(context.Background(), "Chase", map[string]string{
		"2040": dirA,
		"7557": dirB,
	})
	if err != nil {
		t.Fatalf("ProcessFolders failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	origins := map[string]int{}
	for _, rec := range records {
		origins[rec.OriginTag]++
		if rec.SourceFile == "" {
			t.Error("SourceFile not set")
		}
	}
	if origins["Chase-2040"] != 2 || origins["Chase-7557"] != 1 {
		t.Errorf("origin counts = %v", origins)
	}
}

func TestProcessFolders_DegradesOnMalformedDocument(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "2040")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writePDF(t, dir, "bad.pdf")
	writePDF(t, dir, "good.pdf")

	mock := &MockModelClient{}
	mock.GenerateJSONFunc = func(ctx context.Context, document []byte, prompt string) (string, error) {
		// Glob order is sorted, so bad.pdf is asked first (twice).
		if mock.calls <= 2 {
			return "no json here", nil
		}
		return `[{"date": "2025-02-01", "description": "TARGET 00123", "amount": 25.00, "category": "Merchandise"}]`, nil
	}

	records, err := testExtractor(mock).ProcessFolders(context.Background(), "Chase", map[string]string{"2040": dir})
	if err != nil {
		t.Fatalf("ProcessFolders failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (bad document contributes zero)", len(records))
	}
	if records[0].SourceFile != "good.pdf" {
		t.Errorf("SourceFile = %q, want good.pdf", records[0].SourceFile)
	}
}

func TestWriteCanonicalCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statements_extracted.csv")
	records := []domain.RawRecord{
		{Date: "2025-03-05", Description: "B", Amount: 2, Category: "Other", OriginTag: "Chase-2040", SourceFile: "feb.pdf"},
		{Date: "2025-03-01", Description: "A", Amount: 1.5, Category: "Gas", OriginTag: "Chase-2040", SourceFile: "jan.pdf"},
	}
	if err := WriteCanonicalCSV(path, records); err != nil {
		t.Fatalf("WriteCanonicalCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "date,description,amount,category,origin_tag,source_file\n" +
		"2025-03-01,A,1.5,Gas,Chase-2040,jan.pdf\n" +
		"2025-03-05,B,2,Other,Chase-2040,feb.pdf\n"
	if string(data) != want {
		t.Errorf("output =\n%s\nwant\n%s", data, want)
	}
}
