package pathalg

import (
	"testing"
)

func TestNormalizeSeparators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"backslashes", `a\b\c`, "a/b/c"},
		{"mixed", `/a\b/c`, "/a/b/c"},
		{"already normalized", "/a/b/c", "/a/b/c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSeparators(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeSeparators(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Idempotent.
			if again := NormalizeSeparators(got); again != got {
				t.Errorf("NormalizeSeparators is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestLocatorRoundTrip(t *testing.T) {
	loc := ToLocator("/tmp/project/pkg.json")
	if loc != "file:///tmp/project/pkg.json" {
		t.Errorf("ToLocator = %q", loc)
	}
	if back := FromLocator(loc); back != "/tmp/project/pkg.json" {
		t.Errorf("FromLocator(%q) = %q", loc, back)
	}
}

func TestLocatorBestEffort(t *testing.T) {
	// Inputs that cannot be converted come back unchanged.
	if got := ToLocator("relative/path"); got != "relative/path" {
		t.Errorf("ToLocator on relative path = %q, want input unchanged", got)
	}
	if got := FromLocator("http://example.com/x"); got != "http://example.com/x" {
		t.Errorf("FromLocator on non-file locator = %q, want input unchanged", got)
	}
	if got := FromLocator("not a locator"); got != "not a locator" {
		t.Errorf("FromLocator on junk = %q, want input unchanged", got)
	}
}

func TestMergeOverlapping(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"restated base segment", "/tmp/project", "project/src", "/tmp/project/src"},
		{"no overlap concatenates", "/tmp/project", "src/main", "/tmp/project/src/main"},
		{"identical returns a", "/tmp/project", "/tmp/project", "/tmp/project"},
		{"last match wins", "/a/x/b/x", "x/y", "/a/x/b/x/y"},
		{"multi-segment right side", "/home/dev", "dev/code/app", "/home/dev/code/app"},
		{"relative left side", "tmp/project", "project/src", "tmp/project/src"},
		{"root left side", "/", "name", "/name"},
		{"overlap at first segment", "/project", "project/src", "/project/src"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeOverlapping(tt.a, tt.b, "/")
			if got != tt.want {
				t.Errorf("MergeOverlapping(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMergeOverlappingRepeatStable(t *testing.T) {
	// Merging a result with the same right-hand fragment again leaves it
	// unchanged.
	merged := MergeOverlapping("/tmp/project", "project/src", "/")
	again := MergeOverlapping(merged, "src", "/")
	if again != merged {
		t.Errorf("repeat merge changed result: %q -> %q", merged, again)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want string
	}{
		{"identical", "/a/b", "/a/b", "/a/b"},
		{"empty to", "/a/b", "", "/a/b"},
		{"empty from", "", "c/d", "c/d"},
		{"both empty", "", "", ""},
		{"absolute to stands alone", "/ignored", "/etc/conf", "/etc/conf"},
		{"absolute to is cleaned", "/ignored", "/a/./b//c", "/a/b/c"},
		{"parent traversal honored", "/a/b/c", "../d", "/a/b/d"},
		{"double traversal", "/a/b/c", "../../d", "/a/d"},
		{"plain fragment merges", "/tmp/project", "project/src", "/tmp/project/src"},
		{"fragment without overlap", "/tmp/project", "sub", "/tmp/project/sub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.from, tt.to)
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name      string
		container string
		candidate string
		want      bool
	}{
		{"direct child", "/a/b", "/a/b/c", true},
		{"deep descendant", "/a/b", "/a/b/c/d/e", true},
		{"sibling with shared prefix", "/a/b", "/a/bc", false},
		{"same path not contained", "/a/b", "/a/b", false},
		{"outside", "/a/b", "/x/y", false},
		{"trailing separator container", "/a/b/", "/a/b/c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.container, tt.candidate); got != tt.want {
				t.Errorf("Contains(%q, %q) = %v, want %v", tt.container, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestRelativeByOverlap(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		want   string
		wantOK bool
	}{
		{"suffix below overlap", "/a/b", "/a/b/c/d", "c/d", true},
		{"equal inputs", "/a/b", "/a/b", "", true},
		{"no overlap", "/a/b", "/x/y", "", false},
		// First-match scanning: the anchor is the FIRST "b" in to.
		{"first match wins", "/a/b", "/b/x/b/y", "x/b/y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RelativeByOverlap(tt.from, tt.to, "/")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("RelativeByOverlap(%q, %q) = (%q, %v), want (%q, %v)",
					tt.from, tt.to, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCommonRoot(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		to     string
		want   string
		wantOK bool
	}{
		{"to extends from", "/a/b/c", "/a/b/c/d", "/a/b/c", true},
		{"no overlap", "/a/b", "/x/y", "", false},
		{"single shared segment", "/a", "/a", "/a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CommonRoot(tt.from, tt.to, "/")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CommonRoot(%q, %q) = (%q, %v), want (%q, %v)",
					tt.from, tt.to, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Parts
	}{
		{
			"file with extension",
			"/tmp/project/pkg.json",
			Parts{Root: "/", Dir: "/tmp/project", Base: "pkg.json", Stem: "pkg", Ext: ".json"},
		},
		{
			"directory",
			"/tmp/project",
			Parts{Root: "/", Dir: "/tmp", Base: "project", Stem: "project", Ext: ""},
		},
		{
			"relative file",
			"docs/readme.md",
			Parts{Root: "", Dir: "docs", Base: "readme.md", Stem: "readme", Ext: ".md"},
		},
		{
			"root",
			"/",
			Parts{Root: "/", Dir: "/", Base: "", Stem: "", Ext: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.in)
			if got != tt.want {
				t.Errorf("Decompose(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
