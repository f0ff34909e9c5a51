package articles

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hack: $2M Bridge Exploit!", "hack-2m-bridge-exploit"},
		{"Whale Watching 101", "whale-watching-101"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces", "multiple-spaces"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER Case", "upper-case"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugOf(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"my-slug", "my-slug"},
		{"articles/my-slug", "my-slug"},
		{"/deep/path/to/my-slug", "my-slug"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := SlugOf(tc.url); got != tc.want {
			t.Errorf("SlugOf(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
