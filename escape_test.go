package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/moonbit-community/uri"
)

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"hello world!", "hello%20world%21"},
		{"abc-XYZ_0.9~", "abc-XYZ_0.9~"},
		{"a/b?c#d", "a%2Fb%3Fc%23d"},
		{"100%", "100%25"},
		{"%41", "%2541"},
		{"ключ", "%D0%BA%D0%BB%D1%8E%D1%87"},
		{"\x00\x1f\x7f", "%00%1F%7F"},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			if got, want := uri.Escape(c.input), c.want; got != want {
				t.Errorf("uri.Escape(%q) = %q, want %q", c.input, got, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"", "", nil},
		{"hello%20world%21", "hello world!", nil},
		{"no-escapes", "no-escapes", nil},
		{"%41%62%63", "Abc", nil},
		{"lower%20case%2fhex", "lower case/hex", nil},
		{"%", "", uri.ErrInvalidEscape},
		{"%2", "", uri.ErrInvalidEscape},
		{"abc%2", "", uri.ErrInvalidEscape},
		{"%zz", "", uri.ErrInvalidEscape},
		{"abc%fgh", "", uri.ErrInvalidEscape},
		{"100%", "", uri.ErrInvalidEscape},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			got, gotErr := uri.Unescape(c.input)
			if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.Unescape(%q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.input, gotErr, c.wantErr, diff,
				)
			}
			if got, want := got, c.want; got != want {
				t.Errorf("uri.Unescape(%q) = %q, want %q", c.input, got, want)
			}
		})
	}
}

// Unescape must exactly invert Escape for arbitrary byte content.
func TestEscapeUnescapeInverse(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"hello world!",
		"100% of %XY triplets",
		"a+b=c&d",
		"ключ/значение",
		"\x00\x01\xfe\xff",
		"%%%",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Unescape(uri.Escape(in))
			if err != nil {
				t.Fatalf("uri.Unescape(uri.Escape(%q)) error = %v, want nil", in, err)
			}
			if got, want := got, in; got != want {
				t.Errorf("uri.Unescape(uri.Escape(%q)) = %q, want %q", in, got, want)
			}
		})
	}
}

func TestEscapeBytes(t *testing.T) {
	t.Parallel()

	got := uri.Escape([]byte("hello world!"))
	if got, want := string(got), "hello%20world%21"; got != want {
		t.Errorf("uri.Escape(bytes) = %q, want %q", got, want)
	}

	dec, err := uri.Unescape([]byte("hello%20world%21"))
	if err != nil {
		t.Fatalf("uri.Unescape(bytes) error = %v, want nil", err)
	}
	if got, want := string(dec), "hello world!"; got != want {
		t.Errorf("uri.Unescape(bytes) = %q, want %q", got, want)
	}
}
