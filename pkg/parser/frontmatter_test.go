//go:build !integration

package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		wantFrontmatter string
		wantBody        string
		wantFound       bool
	}{
		{
			name:            "basic frontmatter and body",
			content:         "---\nname: helper\n---\nBody text\n",
			wantFrontmatter: "name: helper\n",
			wantBody:        "Body text\n",
			wantFound:       true,
		},
		{
			name:            "crlf line endings",
			content:         "---\r\nname: helper\r\n---\r\nBody text\r\n",
			wantFrontmatter: "name: helper\r\n",
			wantBody:        "Body text\r\n",
			wantFound:       true,
		},
		{
			name:      "no opening delimiter",
			content:   "name: helper\n---\nBody\n",
			wantBody:  "name: helper\n---\nBody\n",
			wantFound: false,
		},
		{
			name:      "unclosed frontmatter",
			content:   "---\nname: helper\nBody without closing\n",
			wantBody:  "---\nname: helper\nBody without closing\n",
			wantFound: false,
		},
		{
			name:            "empty frontmatter block",
			content:         "---\n---\nBody\n",
			wantFrontmatter: "",
			wantBody:        "Body\n",
			wantFound:       true,
		},
		{
			name:            "empty body",
			content:         "---\nname: helper\n---\n",
			wantFrontmatter: "name: helper\n",
			wantBody:        "",
			wantFound:       true,
		},
		{
			name:      "empty content",
			content:   "",
			wantBody:  "",
			wantFound: false,
		},
		{
			name:      "delimiter-like line mid-header is body content",
			content:   "prefix\n---\nname: x\n---\n",
			wantBody:  "prefix\n---\nname: x\n---\n",
			wantFound: false,
		},
		{
			name:            "extra dashes are not a delimiter",
			content:         "---\nname: helper\n----\n---\nBody\n",
			wantFrontmatter: "name: helper\n----\n",
			wantBody:        "Body\n",
			wantFound:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frontmatter, body, found := SplitFrontmatter(tt.content)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if frontmatter != tt.wantFrontmatter {
				t.Errorf("frontmatter = %q, want %q", frontmatter, tt.wantFrontmatter)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestExtractFrontmatter(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc, err := ExtractFrontmatter("---\nname: helper\ntools:\n  - bash\n---\nInstructions here.\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Fields["name"] != "helper" {
			t.Errorf("name = %v, want helper", doc.Fields["name"])
		}
		tools, ok := doc.Fields["tools"].([]any)
		if !ok || len(tools) != 1 || tools[0] != "bash" {
			t.Errorf("tools = %v, want [bash]", doc.Fields["tools"])
		}
		if doc.Body != "Instructions here.\n" {
			t.Errorf("body = %q", doc.Body)
		}
	})

	t.Run("missing frontmatter", func(t *testing.T) {
		_, err := ExtractFrontmatter("Just a markdown file\n")
		if !errors.Is(err, ErrFrontmatterMissing) {
			t.Fatalf("expected ErrFrontmatterMissing, got %v", err)
		}
	})

	t.Run("invalid yaml syntax", func(t *testing.T) {
		_, err := ExtractFrontmatter("---\nname: [unclosed\n---\nBody\n")
		var malformed *MalformedFrontmatterError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedFrontmatterError, got %v", err)
		}
		if !strings.Contains(malformed.Detail, "invalid YAML") {
			t.Errorf("detail should mention invalid YAML, got %q", malformed.Detail)
		}
	})

	t.Run("scalar frontmatter", func(t *testing.T) {
		_, err := ExtractFrontmatter("---\njust a string\n---\nBody\n")
		var malformed *MalformedFrontmatterError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedFrontmatterError, got %v", err)
		}
		if !strings.Contains(malformed.Detail, "mapping") {
			t.Errorf("detail should mention mapping, got %q", malformed.Detail)
		}
	})

	t.Run("sequence frontmatter", func(t *testing.T) {
		_, err := ExtractFrontmatter("---\n- a\n- b\n---\nBody\n")
		var malformed *MalformedFrontmatterError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedFrontmatterError, got %v", err)
		}
	})

	t.Run("empty frontmatter decodes to empty mapping", func(t *testing.T) {
		doc, err := ExtractFrontmatter("---\n---\nBody\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.Fields) != 0 {
			t.Errorf("fields = %v, want empty", doc.Fields)
		}
	})
}
