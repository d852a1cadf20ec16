package saved_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"shadowme/css"
	"shadowme/saved"
	"shadowme/shadow"
	"shadowme/store"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type failingStore struct{ readErr, writeErr error }

func (f failingStore) Read(string) ([]byte, error)  { return nil, f.readErr }
func (f failingStore) Write(string, []byte) error { return f.writeErr }

func TestNewRegistryEmptyStore(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	if got := r.List(); len(got) != 0 {
		t.Fatalf("expected empty registry, got %d", len(got))
	}
}

func TestSaveAndList(t *testing.T) {
	r := saved.NewRegistryWithIDFn(store.NewMemStore(), counterIDs())
	props := shadow.Defaults()

	a, err := r.Save("  Card  ", props, css.Shadow(props))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if a.ID != "id-1" || a.Name != "Card" {
		t.Fatalf("unexpected entry %+v", a)
	}
	if a.CSS != "0px 10px 15px -3px rgba(0, 0, 0, 0.2)" {
		t.Fatalf("unexpected css %q", a.CSS)
	}
	r.Save("Button", props, "x")
	r.Save("Alpha", props, "y")

	list := r.List()
	want := []string{"Card", "Button", "Alpha"}
	for i, name := range want {
		if list[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, list[i].Name)
		}
	}
}

func TestSaveDuplicateNameIgnoresCase(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	if _, err := r.Save("Shadow A", shadow.Defaults(), ""); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	_, err := r.Save("shadow a", shadow.Defaults(), "")
	if !errors.Is(err, saved.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := r.Save(" SHADOW A ", shadow.Defaults(), ""); !errors.Is(err, saved.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName for padded name, got %v", err)
	}
	if n := len(r.List()); n != 1 {
		t.Fatalf("expected 1 entry, got %d", n)
	}
}

func TestSaveEmptyName(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := r.Save(name, shadow.Defaults(), ""); !errors.Is(err, saved.ErrEmptyName) {
			t.Errorf("Save(%q): expected ErrEmptyName, got %v", name, err)
		}
	}
}

func TestSaveCopiesProperties(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	m := shadow.NewModel()
	s, _ := r.Save("snap", m.Snapshot(), "css")
	m.Update(shadow.FieldOffsetX, 40)

	got, ok := r.Get(s.ID)
	if !ok {
		t.Fatal("Get returned ok=false")
	}
	if got.Properties.OffsetX != 0 {
		t.Fatalf("saved properties followed model mutation: %+v", got.Properties)
	}
}

func TestDelete(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	a, _ := r.Save("a", shadow.Defaults(), "")
	b, _ := r.Save("b", shadow.Defaults(), "")

	r.Delete(a.ID)
	list := r.List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Fatalf("expected only b left, got %+v", list)
	}
	r.Delete("does-not-exist")
	if len(r.List()) != 1 {
		t.Fatal("deleting unknown id must be a no-op")
	}
	if _, ok := r.Get(a.ID); ok {
		t.Fatal("deleted entry still retrievable")
	}
}

func TestIDsUniqueAndOrdered(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 50; i++ {
		s, err := r.Save(fmt.Sprintf("s%d", i), shadow.Defaults(), "")
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate id %s", s.ID)
		}
		seen[s.ID] = true
		if prev != "" && s.ID <= prev {
			t.Fatalf("ids not increasing: %s after %s", s.ID, prev)
		}
		prev = s.ID
	}
}

func TestPersistsAcrossRestart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	r := saved.NewRegistry(store.NewFileStore(dir))
	props := shadow.Properties{OffsetX: 8, OffsetY: 8, BlurRadius: 15, Color: "#3B82F6", Alpha: 0.25}
	s, _ := r.Save("Pop", props, css.Shadow(props))
	r.Save("Other", shadow.Defaults(), "")
	r.Delete(s.ID)
	r.Save("Pop", props, css.Shadow(props))

	r2 := saved.NewRegistry(store.NewFileStore(dir))
	list := r2.List()
	if len(list) != 2 || list[0].Name != "Other" || list[1].Name != "Pop" {
		t.Fatalf("unexpected reloaded list %+v", list)
	}
	if list[1].Properties != props {
		t.Fatalf("properties not preserved: %+v", list[1].Properties)
	}
}

func TestLoadFillsMissingFieldsWithDefaults(t *testing.T) {
	st := store.NewMemStore()
	st.Write(saved.StoreKey, []byte(`[{"id":"1","name":"old","properties":{"offsetX":3,"color":"#ffffff"},"css":"c"}]`))

	r := saved.NewRegistry(st)
	s, ok := r.Get("1")
	if !ok {
		t.Fatal("expected record 1")
	}
	want := shadow.Defaults()
	want.OffsetX = 3
	want.Color = "#ffffff"
	if s.Properties != want {
		t.Fatalf("expected %+v, got %+v", want, s.Properties)
	}
}

func TestLoadCorruptFallsBackToEmpty(t *testing.T) {
	st := store.NewMemStore()
	st.Write(saved.StoreKey, []byte(`{not json`))
	r := saved.NewRegistry(st)
	if len(r.List()) != 0 {
		t.Fatal("expected empty registry for corrupt record")
	}
	if _, err := r.Save("fresh", shadow.Defaults(), ""); err != nil {
		t.Fatalf("registry unusable after corrupt load: %v", err)
	}
}

func TestLoadSkipsIncompleteRecords(t *testing.T) {
	st := store.NewMemStore()
	st.Write(saved.StoreKey, []byte(`[{"id":"","name":"x"},{"id":"2","name":"  "},{"id":"3","name":"ok"}]`))
	r := saved.NewRegistry(st)
	if list := r.List(); len(list) != 1 || list[0].ID != "3" {
		t.Fatalf("expected only record 3, got %+v", list)
	}
}

func TestStoreFailuresAreAbsorbed(t *testing.T) {
	r := saved.NewRegistry(failingStore{readErr: errors.New("disk gone"), writeErr: errors.New("read-only")})
	s, err := r.Save("kept", shadow.Defaults(), "")
	if err != nil {
		t.Fatalf("write failure must not surface, got %v", err)
	}
	if _, ok := r.Get(s.ID); !ok {
		t.Fatal("entry should remain in memory")
	}
}

func TestExportImport(t *testing.T) {
	src := saved.NewRegistry(store.NewMemStore())
	p := shadow.Properties{OffsetX: 2, OffsetY: 2, BlurRadius: 5, Color: "#000000", Alpha: 0.2, Inset: true}
	src.Save("Inset", p, css.Shadow(p))
	src.Save("Plain", shadow.Defaults(), css.Shadow(shadow.Defaults()))

	data, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(data), "name: Inset") {
		t.Fatalf("unexpected YAML:\n%s", data)
	}

	dst := saved.NewRegistry(store.NewMemStore())
	dst.Save("plain", shadow.Defaults(), "")
	n, err := dst.Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported (duplicate skipped), got %d", n)
	}
	list := dst.List()
	if list[1].Name != "Inset" || list[1].Properties != p {
		t.Fatalf("unexpected imported entry %+v", list[1])
	}
}

func TestImportDerivesMissingCSS(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	n, err := r.Import([]byte("- name: Tiny\n  properties:\n    offsetY: 1\n"))
	if err != nil || n != 1 {
		t.Fatalf("Import: n=%d err=%v", n, err)
	}
	got := r.List()[0]
	if got.CSS != "0px 1px 15px -3px rgba(0, 0, 0, 0.2)" {
		t.Fatalf("unexpected derived css %q", got.CSS)
	}

	if _, err := r.Import([]byte("name: not-a-list")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestImportClampsProperties(t *testing.T) {
	r := saved.NewRegistry(store.NewMemStore())
	doc := "- name: Wild\n  properties:\n    offsetX: 400\n    blurRadius: -9\n    color: blue\n    alpha: 7\n"
	if n, err := r.Import([]byte(doc)); err != nil || n != 1 {
		t.Fatalf("Import: n=%d err=%v", n, err)
	}
	got := r.List()[0].Properties
	want := shadow.Properties{OffsetX: 50, OffsetY: 10, BlurRadius: 0, SpreadRadius: -3, Color: "#000000", Alpha: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestFind(t *testing.T) {
	r := saved.NewRegistryWithIDFn(store.NewMemStore(), counterIDs())
	r.Save("Card Lift", shadow.Defaults(), "")

	if s, ok := r.Find("id-1"); !ok || s.Name != "Card Lift" {
		t.Fatalf("Find by id: %+v %v", s, ok)
	}
	if s, ok := r.Find(" card lift "); !ok || s.ID != "id-1" {
		t.Fatalf("Find by name: %+v %v", s, ok)
	}
	if _, ok := r.Find("missing"); ok {
		t.Fatal("expected miss")
	}
}
