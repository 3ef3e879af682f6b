package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

func TestSentimentPie_WritesPNG(t *testing.T) {
	r := NewPieChartRenderer()
	path := filepath.Join(t.TempDir(), "pie.png")

	counts := map[entities.SentimentCategory]int{
		entities.SentimentPositive: 4,
		entities.SentimentNeutral:  3,
		entities.SentimentNegative: 1,
	}
	if err := r.SentimentPie(counts, path); err != nil {
		t.Fatalf("SentimentPie failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestSentimentPie_SkipsZeroSlices(t *testing.T) {
	r := NewPieChartRenderer()
	path := filepath.Join(t.TempDir(), "pie.png")

	counts := map[entities.SentimentCategory]int{
		entities.SentimentPositive: 2,
	}
	if err := r.SentimentPie(counts, path); err != nil {
		t.Fatalf("SentimentPie failed: %v", err)
	}
}

func TestSentimentPie_EmptyCounts(t *testing.T) {
	r := NewPieChartRenderer()
	path := filepath.Join(t.TempDir(), "pie.png")

	if err := r.SentimentPie(map[entities.SentimentCategory]int{}, path); err == nil {
		t.Fatal("expected error for all-zero counts")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatal("no file may be written for an empty chart")
	}
}
