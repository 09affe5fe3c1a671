package listitem

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// nfo covers the fields shared by <movie>, <episodedetails>, <tvshow> and
// <musicvideo> documents.
type nfo struct {
	XMLName   xml.Name
	Title     string   `xml:"title"`
	SortTitle string   `xml:"sorttitle"`
	ShowTitle string   `xml:"showtitle"`
	Plot      string   `xml:"plot"`
	Outline   string   `xml:"outline"`
	Year      int      `xml:"year"`
	Genre     []string `xml:"genre"`
	Director  []string `xml:"director"`
	Runtime   int      `xml:"runtime"`
	Rating    float64  `xml:"rating"`
	Season    int      `xml:"season"`
	Episode   int      `xml:"episode"`
	PlayCount int      `xml:"playcount"`
	Thumb     []string `xml:"thumb"`
	Fanart    string   `xml:"fanart>thumb"`
	Tags      []string `xml:"tag"`
	Artist    []string `xml:"artist"`
	Album     string   `xml:"album"`
}

var nfoMediaTypes = map[string]string{
	"movie":          MediaMovie,
	"episodedetails": MediaEpisode,
	"tvshow":         MediaTVShow,
	"musicvideo":     MediaVideo,
}

// mediaExtensions are files an .nfo may describe.
var mediaExtensions = []string{".strm", ".mkv", ".mp4", ".avi", ".ts", ".m4v", ".mov", ".webm"}

// LoadNFO parses a Kodi-compatible .nfo file into an item with a video tag.
func LoadNFO(path string) (*Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nfo: %w", err)
	}
	var n nfo
	if err := xml.Unmarshal(b, &n); err != nil {
		return nil, fmt.Errorf("failed to parse nfo %s: %w", path, err)
	}
	mediaType, ok := nfoMediaTypes[n.XMLName.Local]
	if !ok {
		return nil, fmt.Errorf("unsupported nfo root <%s> in %s", n.XMLName.Local, path)
	}

	trimAll := func(in []string) []string {
		out := lo.Map(in, func(s string, _ int) string { return strings.TrimSpace(s) })
		return lo.Filter(out, func(s string, _ int) bool { return s != "" })
	}

	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	item := &Item{
		Label:     title,
		SortLabel: strings.TrimSpace(n.SortTitle),
		Path:      path,
		Video: &VideoTag{
			MediaType:   mediaType,
			Title:       title,
			Plot:        strings.TrimSpace(n.Plot),
			PlotOutline: strings.TrimSpace(n.Outline),
			Year:        n.Year,
			Genre:       trimAll(n.Genre),
			Director:    trimAll(n.Director),
			Duration:    time.Duration(n.Runtime) * time.Minute,
			Rating:      n.Rating,
			TVShowTitle: strings.TrimSpace(n.ShowTitle),
			Season:      n.Season,
			Episode:     n.Episode,
			PlayCount:   n.PlayCount,
			Tags:        trimAll(n.Tags),
		},
	}
	if thumbs := trimAll(n.Thumb); len(thumbs) > 0 {
		item.Thumb = thumbs[0]
		item.SetArt("thumb", thumbs[0])
	}
	if f := strings.TrimSpace(n.Fanart); f != "" {
		item.SetArt("fanart", f)
	}
	if len(n.Artist) > 0 {
		item.Music = &MusicTag{Title: title, Artist: trimAll(n.Artist), Album: strings.TrimSpace(n.Album), Year: n.Year}
	}
	if item.Video.Year > 0 {
		item.Label2 = fmt.Sprintf("%d", item.Video.Year)
	}
	return item, nil
}

// LoadDir lists a directory as items: sub directories become folders, each
// .nfo becomes a video item pointing at its media file when one exists.
// Unparseable .nfo files are skipped.
func LoadDir(dir string) ([]*Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var folders, videos []*Item
	names := lo.Map(entries, func(e os.DirEntry, _ int) string { return e.Name() })
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			folders = append(folders, NewFolder(name, filepath.Join(dir, name)))
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".nfo" {
			continue
		}
		item, err := LoadNFO(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if media, ok := lo.Find(names, func(n string) bool {
			ext := strings.ToLower(filepath.Ext(n))
			return strings.TrimSuffix(n, filepath.Ext(n)) == base && lo.Contains(mediaExtensions, ext)
		}); ok {
			item.Path = filepath.Join(dir, media)
		}
		if info, err := os.Stat(item.Path); err == nil {
			item.Size = info.Size()
			item.Date = info.ModTime()
		}
		videos = append(videos, item)
	}

	sort.Slice(folders, func(i, j int) bool {
		return strings.ToLower(folders[i].Label) < strings.ToLower(folders[j].Label)
	})
	sort.Slice(videos, func(i, j int) bool {
		ki, kj := strings.ToLower(videos[i].SortKey()), strings.ToLower(videos[j].SortKey())
		if ki == kj {
			return videos[i].Path < videos[j].Path
		}
		return ki < kj
	})
	return append(folders, videos...), nil
}
