package frontmatter

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		wantFM   string
		wantBody string
		wantHas  bool
		wantErr  string
	}{
		{
			name:     "with frontmatter",
			in:       "---\ntitle: Intro\norder: 1\n---\nOnce upon a time.\n",
			wantFM:   "title: Intro\norder: 1",
			wantBody: "Once upon a time.\n",
			wantHas:  true,
		},
		{
			name:     "no frontmatter",
			in:       "Just prose.\n",
			wantBody: "Just prose.\n",
		},
		{
			name:    "empty block",
			in:      "---\n---\nbody",
			wantFM:  "",
			wantHas: true, wantBody: "body",
		},
		{
			name:    "unterminated",
			in:      "---\ntitle: Broken\n",
			wantErr: "unterminated frontmatter",
		},
		{
			name:     "crlf",
			in:       "---\r\ntitle: Win\r\n---\r\nbody\r\n",
			wantFM:   "title: Win",
			wantBody: "body\r\n",
			wantHas:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, has, err := Split(tt.in)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if has != tt.wantHas || fm != tt.wantFM || body != tt.wantBody {
				t.Fatalf("Split=%q,%q,%v want %q,%q,%v", fm, body, has, tt.wantFM, tt.wantBody, tt.wantHas)
			}
		})
	}
}

func TestComposeSplitRoundTrip(t *testing.T) {
	t.Parallel()

	doc := Compose("id: s1\ntitle: Intro", "The body.\n")
	fm, body, has, err := Split(doc)
	if err != nil || !has {
		t.Fatalf("Split(Compose)=%v has=%v", err, has)
	}
	if fm != "id: s1\ntitle: Intro" || body != "The body.\n" {
		t.Fatalf("round trip mismatch: %q %q", fm, body)
	}
}
