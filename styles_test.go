package xhtmlpage

import (
	"errors"
	"io"
	"testing"

	"github.com/alnah/go-xhtmlpage/internal/epubpath"
)

// failingStyle is a stylesheet whose content cannot be read.
type failingStyle struct{}

func (failingStyle) WriteTo(io.Writer) (int64, error) { return 0, errors.New("disk on fire") }
func (failingStyle) MediaType() string                { return MediaTypeCSS }
func (failingStyle) PathInPackage() string            { return "OEBPS/Styles/broken.css" }

// ---------------------------------------------------------------------------
// TestReadStylesheet - Encoding handling
// ---------------------------------------------------------------------------

func TestReadStylesheet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content []byte
		want    string
		wantErr bool
	}{
		{
			name:    "plain utf-8",
			content: []byte("body{color:red}"),
			want:    "body{color:red}",
		},
		{
			name:    "utf-8 bom is stripped",
			content: []byte("\xEF\xBB\xBFp{}"),
			want:    "p{}",
		},
		{
			name:    "utf-16le with bom",
			content: []byte("\xFF\xFEp\x00{\x00}\x00"),
			want:    "p{}",
		},
		{
			name:    "utf-16be with bom",
			content: []byte("\xFE\xFF\x00p\x00{\x00}"),
			want:    "p{}",
		},
		{
			name:    "non-ascii text",
			content: []byte(`q::before{content:"«"}`),
			want:    `q::before{content:"«"}`,
		},
		{
			name:    "empty",
			content: nil,
			want:    "",
		},
		{
			name:    "invalid utf-8",
			content: []byte("a\x80b"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := readStylesheet(NewStylesheet("s.css", tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("readStylesheet() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("readStylesheet() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStyleResolver - Link and inline attachments
// ---------------------------------------------------------------------------

func TestStyleResolver_Link(t *testing.T) {
	t.Parallel()

	r := styleResolver{compat: XHTML11, docDir: epubpath.Dir("OEBPS/Text")}
	att, err := r.resolve(NewStylesheet("OEBPS/Styles/main.css", []byte("ignored")))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if att.Embedded {
		t.Error("Embedded = true, want false")
	}
	if att.Err != nil {
		t.Errorf("Err = %v, want nil", att.Err)
	}
	if att.Node.Tag != "link" {
		t.Fatalf("Node = <%s>, want <link>", att.Node.Tag)
	}
	for key, want := range map[string]string{
		"rel":  "stylesheet",
		"type": MediaTypeCSS,
		"href": "../Styles/main.css",
	} {
		if got := att.Node.SelectAttrValue(key, ""); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if att.Node.Text() != "" {
		t.Errorf("link should have no content, got %q", att.Node.Text())
	}
}

func TestStyleResolver_Inline(t *testing.T) {
	t.Parallel()

	r := styleResolver{compat: HTML5, embed: true, docDir: epubpath.ContentDir}
	att, err := r.resolve(NewStylesheet("OEBPS/Styles/main.css", []byte("h1{font-size:2em}")))
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}

	if !att.Embedded {
		t.Error("Embedded = false, want true")
	}
	if att.Node.Tag != "style" {
		t.Fatalf("Node = <%s>, want <style>", att.Node.Tag)
	}
	if got := att.Node.Text(); got != "h1{font-size:2em}" {
		t.Errorf("content = %q, want verbatim stylesheet", got)
	}
	if att.Node.SelectAttr("href") != nil {
		t.Error("inline style should not carry href")
	}
}

func TestStyleResolver_InlineSoftFailure(t *testing.T) {
	t.Parallel()

	r := styleResolver{compat: XHTML5, embed: true}
	att, err := r.resolve(failingStyle{})
	if err != nil {
		t.Fatalf("resolve() error = %v, want soft failure", err)
	}

	if !errors.Is(att.Err, ErrStyleEmbed) {
		t.Errorf("Err = %v, want %v", att.Err, ErrStyleEmbed)
	}
	if att.Node == nil || att.Node.Tag != "style" {
		t.Fatalf("Node = %v, want empty <style>", att.Node)
	}
	if len(att.Node.Child) != 0 {
		t.Errorf("failed style should be empty, has %d children", len(att.Node.Child))
	}
}

func TestStyleResolver_UnsupportedCompatibility(t *testing.T) {
	t.Parallel()

	for _, embed := range []bool{false, true} {
		r := styleResolver{embed: embed}
		if _, err := r.resolve(NewStylesheet("a.css", nil)); !errors.Is(err, ErrUnsupportedCompatibility) {
			t.Errorf("embed=%v: resolve() error = %v, want %v", embed, err, ErrUnsupportedCompatibility)
		}
	}
}
