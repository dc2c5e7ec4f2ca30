package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want string
	}{
		{name: "empty", in: "", sep: "-", want: ""},
		{name: "whitespace only", in: "   ", sep: "-", want: ""},
		{name: "single token", in: "db", sep: "-", want: "db"},
		{name: "single token padded", in: "  db  ", sep: "-", want: "db"},
		{name: "two tokens hyphen", in: "user auth", sep: "-", want: "user-auth"},
		{name: "two tokens comma", in: "user auth", sep: ",", want: "user,auth"},
		{name: "many tokens mixed whitespace", in: " a \t b\nc ", sep: "-", want: "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScope(tt.in, tt.sep)
			if err != nil {
				t.Fatalf("ParseScope(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseScope(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The normalized scope must be a single token: N input words yield exactly
// N-1 separators and no whitespace.
func TestParseScopeSeparatorCount(t *testing.T) {
	got, err := ParseScope("one two three four", ",")
	if err != nil {
		t.Fatalf("ParseScope error = %v", err)
	}
	if n := strings.Count(got, ","); n != 3 {
		t.Errorf("separator count = %d, want 3 (got %q)", n, got)
	}
	if strings.ContainsAny(got, " \t\n") {
		t.Errorf("normalized scope contains whitespace: %q", got)
	}
}

func TestParseSubject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "trailing period", in: "Fix bug.", want: "Fix bug"},
		{name: "trailing periods and spaces", in: "  Fix bug...  ", want: "Fix bug"},
		{name: "no trailing period", in: "add index", want: "add index"},
		{name: "empty", in: "", wantErr: true},
		{name: "whitespace only", in: "   ", wantErr: true},
		{name: "periods only", in: "...", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSubject(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrSubjectRequired) {
					t.Fatalf("ParseSubject(%q) error = %v, want ErrSubjectRequired", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSubject(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSubject(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMultipleLineBreaker(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank lines only", in: "\n\n\n", want: ""},
		{name: "single line", in: "one line", want: "one line"},
		{
			name: "adjacent lines join",
			in:   "first part\nsecond part",
			want: "first part second part",
		},
		{
			name: "paragraph break preserved",
			in:   "para one\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "blank runs collapse",
			in:   "para one\n\n\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "windows line endings",
			in:   "a\r\nb\r\n\r\nc",
			want: "a b\n\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MultipleLineBreaker(tt.in)
			if err != nil {
				t.Fatalf("MultipleLineBreaker(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("MultipleLineBreaker(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
