package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/moonbit-community/uri"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want string
	}{
		{"/a/b/c/./../../g", "/a/g"},
		{"mid/content=5/../6", "mid/6"},
		{"/a/b/../c", "/a/c"},
		{"/a/./b", "/a/b"},
		{"/./", "/"},
		{"/../", "/"},
		{"/..", "/"},
		{"/.", "/"},
		{"..", ""},
		{".", ""},
		{"../a", "a"},
		{"./a", "a"},
		{"a/..", "/"},
		{"a/../", "/"},
		{"/a/b/c/", "/a/b/c/"},
		{"", ""},
		{"/", "/"},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			t.Parallel()

			u := new(uri.URI).WithPath(c.path)
			if got, want := u.Normalize().Path(), c.want; got != want {
				t.Errorf("Normalize of path %q = %q, want %q", c.path, got, want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"dot segments with default port and case folding",
			"HTTP://EXAMPLE.com:80/a/../other/./file.html",
			"http://example.com/other/file.html",
		},
		{"default https port dropped", "https://example.com:443/", "https://example.com/"},
		{"default telnet port dropped", "telnet://example.com:23", "telnet://example.com"},
		{"non-default port kept", "http://example.com:8080/", "http://example.com:8080/"},
		{"unknown scheme port kept", "foo://example.com:80/", "foo://example.com:80/"},
		{"path case preserved", "http://EXAMPLE.com/UPPER", "http://example.com/UPPER"},
		{"query and fragment untouched", "http://h/a/./b?X=./.#F/../g", "http://h/a/b?X=./.#F/../g"},
		{"ipv6 host folded", "http://[2001:DB8::1]:80/x", "http://[2001:db8::1]/x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.Parse(c.input)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", c.input, err)
			}
			if got, want := u.Normalize().String(), c.want; got != want {
				t.Errorf("Normalize of %q = %q, want %q", c.input, got, want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"HTTP://EXAMPLE.com:80/a/b/c/./../../g?q#f",
		"https://user@host:443/x/../y",
		"a/b/../c",
		"//host/./p",
		"mailto:user@example.com",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			u, err := uri.Parse(in)
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", in, err)
			}
			once := u.Normalize()
			twice := once.Normalize()
			if diff := cmp.Diff(twice, once); diff != "" {
				t.Errorf("Normalize of %q is not idempotent\ndiff (-got +want):\n%v", in, diff)
			}
		})
	}
}

func TestNormalizeLeavesOriginal(t *testing.T) {
	t.Parallel()

	u, err := uri.Parse("HTTP://EXAMPLE.com:80/a/../b")
	if err != nil {
		t.Fatalf("uri.Parse error = %v, want nil", err)
	}
	_ = u.Normalize()
	if got, want := u.String(), "HTTP://EXAMPLE.com:80/a/../b"; got != want {
		t.Errorf("original after Normalize = %q, want %q", got, want)
	}
}

func BenchmarkNormalize(b *testing.B) {
	u, err := uri.Parse("HTTP://EXAMPLE.com:80/a/b/c/./../../g?q#f")
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		u.Normalize()
	}
}
