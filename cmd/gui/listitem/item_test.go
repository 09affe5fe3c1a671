package listitem

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleMovie = `<?xml version="1.0" encoding="UTF-8"?>
<movie><title>Strange Filters</title><sorttitle>Filters, Strange</sorttitle><plot>Exploring...</plot>
<year>2019</year><genre>Documentary</genre><genre> </genre><runtime>95</runtime><playcount>0</playcount>
<thumb>https://example.com/a.jpg</thumb><tag>Posy</tag><tag>Demo</tag></movie>`

const sampleEpisode = `<episodedetails><title>Pilot</title><showtitle>Show</showtitle><season>1</season><episode>2</episode><playcount>3</playcount></episodedetails>`

func TestLoadNFO_Movie(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.nfo")
	if err := os.WriteFile(p, []byte(sampleMovie), 0o644); err != nil {
		t.Fatal(err)
	}
	item, err := LoadNFO(p)
	if err != nil {
		t.Fatal(err)
	}
	if item.Label != "Strange Filters" || item.SortKey() != "Filters, Strange" {
		t.Fatalf("bad labels: %q / %q", item.Label, item.SortKey())
	}
	v := item.Video
	if v.MediaType != MediaMovie || v.Year != 2019 || v.Duration != 95*time.Minute {
		t.Fatalf("bad video tag: %+v", v)
	}
	if len(v.Genre) != 1 || len(v.Tags) != 2 {
		t.Fatalf("blank entries not filtered: %v %v", v.Genre, v.Tags)
	}
	if item.GetArt("thumb") != "https://example.com/a.jpg" {
		t.Fatalf("thumb art missing")
	}
	if item.IsWatched() {
		t.Fatalf("unplayed movie reported watched")
	}
}

func TestLoadNFO_Episode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "e.nfo")
	os.WriteFile(p, []byte(sampleEpisode), 0o644)
	item, err := LoadNFO(p)
	if err != nil {
		t.Fatal(err)
	}
	if item.Video.MediaType != MediaEpisode || item.Video.Season != 1 || item.Video.Episode != 2 {
		t.Fatalf("bad episode tag: %+v", item.Video)
	}
	if !item.IsWatched() {
		t.Fatalf("played episode not watched")
	}
}

func TestLoadNFO_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadNFO(filepath.Join(dir, "missing.nfo")); err == nil {
		t.Errorf("expected error for missing file")
	}
	p := filepath.Join(dir, "bad.nfo")
	os.WriteFile(p, []byte(`<album><title>x</title></album>`), 0o644)
	if _, err := LoadNFO(p); err == nil {
		t.Errorf("expected error for unsupported root")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "Sub"), 0o755)
	os.WriteFile(filepath.Join(dir, "b.nfo"), []byte(`<movie><title>Banana</title></movie>`), 0o644)
	os.WriteFile(filepath.Join(dir, "b.strm"), []byte("plugin://x"), 0o644)
	os.WriteFile(filepath.Join(dir, "a.nfo"), []byte(`<movie><title>Apple</title></movie>`), 0o644)
	os.WriteFile(filepath.Join(dir, "broken.nfo"), []byte(`<movie>`), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)

	items, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("want 3 items, got %d", len(items))
	}
	if !items[0].IsFolder || items[0].Label != "Sub" {
		t.Errorf("folders should come first: %+v", items[0])
	}
	if items[1].Label != "Apple" || items[2].Label != "Banana" {
		t.Errorf("bad order: %q %q", items[1].Label, items[2].Label)
	}
	if filepath.Ext(items[2].Path) != ".strm" {
		t.Errorf("media file not paired: %s", items[2].Path)
	}
}

func TestLayoutCache(t *testing.T) {
	item := New("x")
	if item.HasLayout() {
		t.Fatal("new item has layout")
	}
	item.SetLayout(false, &Rendered{Labels: []string{"x"}, Visible: true})
	item.SetLayout(true, &Rendered{})
	if item.Layout(false) == nil || item.Layout(true) == nil {
		t.Fatal("layouts not stored")
	}
	item.FreeMemory()
	if item.HasLayout() {
		t.Fatal("FreeMemory kept layouts")
	}
}

func TestPropertiesAndPaths(t *testing.T) {
	item := &Item{Label: "Movie", Path: "/media/films/movie.mkv"}
	item.SetProperty("Foo", "bar")
	if item.Property("foo") != "bar" {
		t.Errorf("properties should be case-insensitive")
	}
	if item.Filename() != "movie.mkv" || item.FolderPath() != "/media/films" || item.Extension() != "mkv" {
		t.Errorf("path helpers: %q %q %q", item.Filename(), item.FolderPath(), item.Extension())
	}
	other := &Item{Path: "/media/films/movie.mkv"}
	if !item.IsSamePath(other) || item.IsSamePath(New("y")) {
		t.Errorf("IsSamePath mismatch")
	}
}

func TestEPGProgress(t *testing.T) {
	start := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	e := &EPGTag{Start: start, End: start.Add(time.Hour)}
	tests := []struct {
		now  time.Time
		want float64
	}{
		{start.Add(-time.Minute), 0},
		{start.Add(30 * time.Minute), 50},
		{start.Add(2 * time.Hour), 100},
	}
	for _, tt := range tests {
		if got := e.Progress(tt.now); got != tt.want {
			t.Errorf("Progress(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
