// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bionic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty document",
			in:   "",
			want: "",
		},
		{
			name: "whitespace runs preserved exactly",
			in:   "one  two\t\tthree\n\nfour five",
			want: "one  two\t\t**th**ree\n\n**fo**ur **fi**ve",
		},
		{
			name: "front matter passes through verbatim",
			in:   "---\ntitle: Wonderful Documentation\ndraft: true\n---\n\nWonderful documentation follows.\n",
			want: "---\ntitle: Wonderful Documentation\ndraft: true\n---\n\n**Won**derful **doc**umentation **fo**llows.\n",
		},
		{
			name: "empty front matter block",
			in:   "---\n---\nrunning text",
			want: "---\n---\n**ru**nning **te**xt",
		},
		{
			name: "unclosed front matter transforms whole document",
			in:   "---\ntitle: something\nno closing line",
			want: "---\n**ti**tle: **som**ething\nno **cl**osing **li**ne",
		},
		{
			name: "front matter only without trailing newline",
			in:   "---\ntitle: unchanged\n---",
			want: "---\ntitle: unchanged\n---",
		},
		{
			name: "crlf front matter",
			in:   "---\r\ntitle: x\r\n---\r\nwonderful words\r\n",
			want: "---\r\ntitle: x\r\n---\r\n**won**derful **wo**rds\r\n",
		},
		{
			name: "whitespace-padded delimiter lines",
			in:   "--- \ntitle: skip this\n --- \nrunning on",
			want: "--- \ntitle: skip this\n --- \n**ru**nning on",
		},
		{
			name: "dash run is not a delimiter",
			in:   "----\nnot front matter\n----\nwonderful",
			want: "----\nnot **fr**ont **ma**tter\n----\n**won**derful",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Document(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Stripping every bold marker from transformed output must reproduce the
// input exactly, for documents that carried no markers of their own.
func TestDocument_RoundTrip(t *testing.T) {
	in := "# Heading\n\nA paragraph with mixed words: short, belonging, extraordinary.\n\n- list item one\n- another entry\n\ntail\n"

	out := Document(in)
	restored := strings.ReplaceAll(out, "**", "")

	if diff := cmp.Diff(in, restored); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFrontMatterEnd(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"no front matter", "plain text\n", 0},
		{"single delimiter line only", "---", 0},
		{"closed block", "---\na: b\n---\nbody", 13},
		{"closing line is last without newline", "---\na: b\n---", 12},
		{"never closed", "---\na: b\nc: d\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, frontMatterEnd(tt.in))
		})
	}
}
