package processors

import (
	"strings"
	"testing"
)

func TestCleanPlainTextPassesThrough(t *testing.T) {
	cleaner := NewTextCleaner()

	got, err := cleaner.Clean("Jane Doe\nSenior   Engineer\tat Acme")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Jane Doe\nSenior Engineer at Acme" {
		t.Errorf("Clean = %q", got)
	}
}

func TestCleanStripsHTML(t *testing.T) {
	cleaner := NewTextCleaner()

	input := `<html><head><title>Profile</title><style>body { color: red; }</style></head>
<body>
<nav>Home | About</nav>
<script>trackVisit();</script>
<div class="resume">Jane Doe, Senior Engineer at Acme Corp. Ten years of backend experience across Go and Python.</div>
<footer>Copyright 2024</footer>
</body></html>`

	got, err := cleaner.Clean(input)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Jane Doe, Senior Engineer") {
		t.Errorf("resume content lost: %q", got)
	}
	for _, unwanted := range []string{"trackVisit", "color: red", "Home | About", "Copyright 2024"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("boilerplate %q survived cleaning", unwanted)
		}
	}
}

func TestCleanFallsBackToBody(t *testing.T) {
	cleaner := NewTextCleaner()

	got, err := cleaner.Clean(`<html><body><p>Short resume text here.</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Short resume text here.") {
		t.Errorf("body fallback failed: %q", got)
	}
}

func TestCleanCollapsesBlankLines(t *testing.T) {
	cleaner := NewTextCleaner()

	got, err := cleaner.Clean("Jane Doe\n\n\n\n\nEngineer")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Jane Doe\n\nEngineer" {
		t.Errorf("Clean = %q", got)
	}
}

func TestEstimateTokens(t *testing.T) {
	cleaner := NewTextCleaner()
	if got := cleaner.EstimateTokens(strings.Repeat("a", 400)); got != 100 {
		t.Errorf("EstimateTokens = %d, want 100", got)
	}
}
