package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/moonbit-community/uri"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    []uri.Param
		wantErr error
	}{
		{"empty", "", nil, nil},
		{
			"single pair",
			"a=1",
			[]uri.Param{{Key: "a", Value: "1"}},
			nil,
		},
		{
			"order preserved",
			"z=26&a=1&m=13",
			[]uri.Param{{Key: "z", Value: "26"}, {Key: "a", Value: "1"}, {Key: "m", Value: "13"}},
			nil,
		},
		{
			"percent-decoded sides",
			"full%20name=Jane%20Doe",
			[]uri.Param{{Key: "full name", Value: "Jane Doe"}},
			nil,
		},
		{
			"key without value",
			"flag&a=1",
			[]uri.Param{{Key: "flag", Value: ""}, {Key: "a", Value: "1"}},
			nil,
		},
		{
			"empty key",
			"=v",
			[]uri.Param{{Key: "", Value: "v"}},
			nil,
		},
		{
			"value with second equals",
			"k=a=b",
			[]uri.Param{{Key: "k", Value: "a=b"}},
			nil,
		},
		{
			"empty chunks skipped",
			"&&a=1&",
			[]uri.Param{{Key: "a", Value: "1"}},
			nil,
		},
		{
			"duplicate keys kept in order",
			"k=1&k=2",
			[]uri.Param{{Key: "k", Value: "1"}, {Key: "k", Value: "2"}},
			nil,
		},
		{"bad escape in key", "a%zz=1", nil, uri.ErrInvalidEscape},
		{"bad escape in value", "a=%2", nil, uri.ErrInvalidEscape},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, gotErr := uri.ParseQuery(c.input)
			if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.ParseQuery(%q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.input, gotErr, c.wantErr, diff,
				)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.ParseQuery(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		params []uri.Param
		want   string
	}{
		{"nil", nil, ""},
		{"empty", []uri.Param{}, ""},
		{"single pair", []uri.Param{{Key: "a", Value: "1"}}, "a=1"},
		{
			"order preserved",
			[]uri.Param{{Key: "z", Value: "26"}, {Key: "a", Value: "1"}},
			"z=26&a=1",
		},
		{
			"sides escaped",
			[]uri.Param{{Key: "full name", Value: "Jane & Joe"}},
			"full%20name=Jane%20%26%20Joe",
		},
		{
			"empty value",
			[]uri.Param{{Key: "flag", Value: ""}},
			"flag=",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := uri.BuildQuery(c.params), c.want; got != want {
				t.Errorf("uri.BuildQuery(%v) = %q, want %q", c.params, got, want)
			}
		})
	}
}

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	params := []uri.Param{
		{Key: "plain", Value: "value"},
		{Key: "full name", Value: "Jane Doe"},
		{Key: "sym", Value: "a&b=c?d"},
		{Key: "", Value: "empty key"},
		{Key: "dup", Value: "1"},
		{Key: "dup", Value: "2"},
	}

	got, err := uri.ParseQuery(uri.BuildQuery(params))
	if err != nil {
		t.Fatalf("uri.ParseQuery error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, params); diff != "" {
		t.Errorf("query round-trip mismatch\ndiff (-got +want):\n%v", diff)
	}
}
