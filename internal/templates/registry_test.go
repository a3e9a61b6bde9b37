package templates

import (
	"errors"
	"testing"
)

func TestRegistryCatalogOrder(t *testing.T) {
	reg := NewRegistry()

	want := []string{
		"modern-professional",
		"classic-executive",
		"creative-designer",
		"minimal-clean",
		"tech-specialist",
	}

	got := reg.IDs()
	if len(got) != len(want) {
		t.Fatalf("catalog has %d templates, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("catalog[%d] = %q, want %q", i, got[i], id)
		}
	}
}

func TestRegistryGetByID(t *testing.T) {
	reg := NewRegistry()

	entry, err := reg.GetByID("modern-professional")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if entry.Name == "" || entry.Category != CategoryProfessional {
		t.Errorf("unexpected descriptor: %+v", entry.Descriptor)
	}

	_, err = reg.GetByID("no-such-template")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("unknown id error = %v, want ErrTemplateNotFound", err)
	}
}

func TestRegistryByCategory(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		category Category
		wantIDs  []string
	}{
		{CategoryExecutive, []string{"classic-executive"}},
		{CategoryCreative, []string{"creative-designer"}},
		{Category("unknown"), nil},
	}

	for _, tt := range tests {
		entries := reg.ByCategory(tt.category)
		if len(entries) != len(tt.wantIDs) {
			t.Errorf("ByCategory(%q) returned %d entries, want %d", tt.category, len(entries), len(tt.wantIDs))
			continue
		}
		for i, id := range tt.wantIDs {
			if entries[i].ID != id {
				t.Errorf("ByCategory(%q)[%d] = %q, want %q", tt.category, i, entries[i].ID, id)
			}
		}
	}
}

func TestRegistryDescriptorsComplete(t *testing.T) {
	for _, entry := range NewRegistry().All() {
		if entry.ID == "" || entry.Name == "" || entry.Description == "" {
			t.Errorf("template %q has incomplete metadata: %+v", entry.ID, entry.Descriptor)
		}
		if entry.Colors.Primary == "" || entry.Fonts.Heading == "" || entry.Layout == "" {
			t.Errorf("template %q missing style metadata", entry.ID)
		}
	}
}
