package rvm

import (
	"reflect"
	"testing"
)

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{
			name: "installed list",
			out:  "ruby-2.0.0-p247\nruby-2.1.5\njruby-1.7.4\n",
			want: []string{"ruby-2.0.0-p247", "ruby-2.1.5", "jruby-1.7.4"},
		},
		{
			name: "blank lines and indentation",
			out:  "\n   ruby-2.1.5\n\n",
			want: []string{"ruby-2.1.5"},
		},
		{
			name: "warning lines dropped",
			out:  "Warning! PATH is not properly set up\nruby-2.1.5\n",
			want: []string{"ruby-2.1.5"},
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseStrings(tt.out); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseStrings(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestParseDefault(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"set", "ruby-2.1.5\n", "ruby-2.1.5"},
		{"unset", "\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDefault(tt.out); got != tt.want {
				t.Errorf("parseDefault(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

func TestParseGemsets(t *testing.T) {
	out := "gemsets for ruby-2.1.5 (found in /home/u/.rvm/gems/ruby-2.1.5)\n" +
		"   (default)\n" +
		"=> global\n" +
		"   myapp\n\n"

	want := []string{"(default)", "global", "myapp"}
	if got := parseGemsets(out); !reflect.DeepEqual(got, want) {
		t.Errorf("parseGemsets = %v, want %v", got, want)
	}
}

func TestParseGemsetsEmpty(t *testing.T) {
	if got := parseGemsets(""); got != nil {
		t.Errorf("parseGemsets(\"\") = %v, want nil", got)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"rvm 1.29.12 (latest) by Michal Papis [https://rvm.io]\n", "1.29.12"},
		{"garbage\n", "garbage"},
	}

	for _, tt := range tests {
		if got := parseVersion(tt.out); got != tt.want {
			t.Errorf("parseVersion(%q) = %q, want %q", tt.out, got, tt.want)
		}
	}
}
