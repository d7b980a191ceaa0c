package utils

import "testing"

func TestCleanMarkdownStripsFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```markdown\n# Title\n```", "# Title"},
		{"```\nplain\n```", "plain"},
		{"  # Already clean  ", "# Already clean"},
		{"inline ```code``` stays", "inline ```code``` stays"},
	}
	for _, c := range cases {
		if got := CleanMarkdown(c.in); got != c.want {
			t.Errorf("CleanMarkdown(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("# Summary\n\n- bullet") {
		t.Error("expected plain markdown to validate")
	}
}
