package skin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
)

var _ infoprov.SkinStore = (*Store)(nil)

func TestPersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin", "settings.json")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if st.Bool("HomeMenuNoWeather") {
		t.Fatalf("fresh store has settings")
	}
	if v, err := st.ToggleBool("HomeMenuNoWeather"); err != nil || !v {
		t.Fatalf("ToggleBool = %v, %v", v, err)
	}
	if err := st.SetString("Background", "/art/bg.jpg"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetTheme("Dark"); err != nil {
		t.Fatal(err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !again.Bool("homemenunoweather") {
		t.Errorf("bool not persisted")
	}
	if got := again.String("BACKGROUND"); got != "/art/bg.jpg" {
		t.Errorf("string = %q", got)
	}
	if again.Theme() != "Dark" {
		t.Errorf("theme = %q", again.Theme())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind")
	}
}

func TestReset(t *testing.T) {
	st := New(Settings{Bools: map[string]bool{"A": true}, Strings: map[string]string{"a": "x"}})
	if !st.Bool("a") || st.String("A") != "x" {
		t.Fatalf("seed not applied")
	}
	if err := st.Reset("A"); err != nil {
		t.Fatal(err)
	}
	if st.Bool("a") || st.String("a") != "" {
		t.Errorf("reset left values behind")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	st := New(Settings{Bools: map[string]bool{"x": true}})
	snap := st.Snapshot()
	snap.Bools["x"] = false
	if !st.Bool("x") {
		t.Errorf("snapshot aliases the store")
	}
}

func TestOpenErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Errorf("expected decode error")
	}
	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(empty); err != nil {
		t.Errorf("empty file: %v", err)
	}
}
