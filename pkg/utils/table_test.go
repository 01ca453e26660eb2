package utils

import "testing"

func TestRenderTable(t *testing.T) {
	got := RenderTable(
		[]string{"Name", "Count"},
		[][]string{
			{"alpha", "1"},
			{"b", "12"},
		},
	)

	want := "| Name  | Count |\n" +
		"| ----- | ----- |\n" +
		"| alpha | 1     |\n" +
		"| b     | 12    |\n"

	if got != want {
		t.Errorf("RenderTable output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(nil, nil); got != "" {
		t.Errorf("RenderTable(nil, nil) = %q, want empty", got)
	}
}

func TestRenderTable_ShortRow(t *testing.T) {
	got := RenderTable(
		[]string{"A", "B"},
		[][]string{{"x"}},
	)

	want := "| A   | B   |\n" +
		"| --- | --- |\n" +
		"| x   |     |\n"

	if got != want {
		t.Errorf("RenderTable output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTable_WideRunes(t *testing.T) {
	got := RenderTable(
		[]string{"Title"},
		[][]string{{"日本語"}},
	)

	want := "| Title  |\n" +
		"| ------ |\n" +
		"| 日本語 |\n"

	if got != want {
		t.Errorf("RenderTable output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTruncateString(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a longer string", 8, "a longer..."},
		{"", 5, ""},
	}

	for _, tc := range cases {
		if got := TruncateString(tc.in, tc.max); got != tc.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  a\tb\n c  "); got != "a b c" {
		t.Errorf("NormalizeWhitespace = %q, want %q", got, "a b c")
	}
}
