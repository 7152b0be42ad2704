package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		opts       Options
		want       []string
		wantMaxLen int
	}{
		{
			name:       "splits on delimiters",
			input:      "the quick, the Quick.",
			want:       []string{"the", "quick", "the", "Quick"},
			wantMaxLen: 5,
		},
		{
			name:       "hyphen semicolon and colon split words",
			input:      "well-known;fact:true",
			want:       []string{"well", "known", "fact", "true"},
			wantMaxLen: 5,
		},
		{
			name:       "keeps apostrophes and other punctuation",
			input:      "don't (stop)",
			want:       []string{"don't", "(stop)"},
			wantMaxLen: 6,
		},
		{
			name:       "skips empty lines",
			input:      "one\n\n\ntwo\r\n",
			want:       []string{"one", "two"},
			wantMaxLen: 3,
		},
		{
			name:       "rune length for max",
			input:      "Straße ok",
			want:       []string{"Straße", "ok"},
			wantMaxLen: 6,
		},
		{
			name:       "stopwords removed on request",
			input:      "The fox and THE dog",
			opts:       Options{SkipStopwords: true},
			want:       []string{"fox", "dog"},
			wantMaxLen: 3,
		},
		{
			name:  "only delimiters",
			input: " ,,;; -- ..",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(strings.NewReader(tt.input), tt.opts)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if !reflect.DeepEqual(got.Words, tt.want) {
				t.Errorf("Tokenize() words = %q, want %q", got.Words, tt.want)
			}
			if got.MaxLen != tt.wantMaxLen {
				t.Errorf("Tokenize() MaxLen = %d, want %d", got.MaxLen, tt.wantMaxLen)
			}
		})
	}
}

func TestTokenizeCountsSkipped(t *testing.T) {
	got, err := Tokenize(strings.NewReader("a b the c"), Options{SkipStopwords: true})
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if got.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", got.Skipped)
	}
	if !reflect.DeepEqual(got.Words, []string{"b", "c"}) {
		t.Errorf("Words = %q, want [b c]", got.Words)
	}
}

func TestIsStopword(t *testing.T) {
	for _, w := range []string{"the", "The", "AND", "it's"} {
		if !IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"fox", "partition", ""} {
		if IsStopword(w) {
			t.Errorf("IsStopword(%q) = true, want false", w)
		}
	}
}

func TestIsHTMLPath(t *testing.T) {
	tests := map[string]bool{
		"page.html":       true,
		"PAGE.HTM":        true,
		"dir/doc.xhtml":   true,
		"notes.txt":       false,
		"html":            false,
		"archive.html.gz": false,
	}
	for path, want := range tests {
		if got := IsHTMLPath(path); got != want {
			t.Errorf("IsHTMLPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFromHTMLArticle(t *testing.T) {
	html := `<!DOCTYPE html>
<html><head><title>Field notes</title><style>.x { color: red }</style></head>
<body>
<article>
<h1>Field notes</h1>
<p>The quick brown fox jumps over the lazy dog near the river bank.</p>
<p>The fox returns every evening and the dog keeps watching the fox.</p>
</article>
<script>var tracking = "secretvalue";</script>
</body></html>`

	for _, articleOnly := range []bool{true, false} {
		text, err := FromHTML([]byte(html), "file:///tmp/notes.html", articleOnly)
		if err != nil {
			t.Fatalf("FromHTML(articleOnly=%v) error = %v", articleOnly, err)
		}

		for _, want := range []string{"quick", "fox", "watching"} {
			if !strings.Contains(text, want) {
				t.Errorf("FromHTML(articleOnly=%v) text missing %q: %q", articleOnly, want, text)
			}
		}
		for _, unwanted := range []string{"secretvalue", "color"} {
			if strings.Contains(text, unwanted) {
				t.Errorf("FromHTML(articleOnly=%v) text contains %q: %q", articleOnly, unwanted, text)
			}
		}
	}
}

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "line break separates words",
			html: "<p>alpha<br>beta</p>",
			want: []string{"alpha", "beta"},
		},
		{
			name: "text outside block elements is kept",
			html: "<p>one</p><span>orphan</span>",
			want: []string{"one", "orphan"},
		},
		{
			name: "inline elements do not split words",
			html: "<p>al<b>pha</b> <i>beta</i></p>",
			want: []string{"alpha", "beta"},
		},
		{
			name: "adjacent cells and list items stay apart",
			html: "<table><tr><td>left</td><td>right</td></tr></table><ul><li>first</li><li>second</li></ul>",
			want: []string{"left", "right", "first", "second"},
		},
		{
			name: "head, scripts and comments are dropped",
			html: "<html><head><title>ignored</title></head><body><!-- note --><div>kept<script>x = 1</script></div></body></html>",
			want: []string{"kept"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := FromHTML([]byte(tt.html), "file:///tmp/page.html", false)
			if err != nil {
				t.Fatalf("FromHTML() error = %v", err)
			}
			tokens, err := Tokenize(strings.NewReader(text), Options{})
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if !reflect.DeepEqual(tokens.Words, tt.want) {
				t.Errorf("FromHTML() tokens = %q, want %q (text %q)", tokens.Words, tt.want, text)
			}
		})
	}
}

func TestFromHTMLRejectsBadURL(t *testing.T) {
	if _, err := FromHTML([]byte("<p>x</p>"), "://bad", false); err == nil {
		t.Error("FromHTML() with invalid URL error = nil, want error")
	}
}
