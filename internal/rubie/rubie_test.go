package rubie

import "testing"

func TestPlausible(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ruby-2.1.5", true},
		{"ruby-2.0.0-p247", true},
		{"jruby-1.7.4", true},
		{"ree-1.8.7-2012.02", true},
		{"1.9.3-p551", true},
		{"rbx-2.2.6", true},
		{"ruby-head", true},
		{"jruby-1.7.4@myapp", true},
		{"goruby", true},
		{"", false},
		{"nonsense", false},
		{"default", false},
		{"-2.1.5", false},
		{"ruby-", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Plausible(tt.input); got != tt.want {
				t.Errorf("Plausible(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGemsetSplit(t *testing.T) {
	tests := []struct {
		input     string
		ruby      string
		gemset    string
		hasGemset bool
	}{
		{"ruby-2.1.5@myapp", "ruby-2.1.5", "myapp", true},
		{"ruby-2.1.5", "ruby-2.1.5", "", false},
		{"jruby-1.7.4@rails@edge", "jruby-1.7.4", "rails@edge", true},
		{"ruby-2.1.5@", "ruby-2.1.5", "", true},
		{"goruby", "goruby", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HasGemset(tt.input); got != tt.hasGemset {
				t.Errorf("HasGemset(%q) = %v, want %v", tt.input, got, tt.hasGemset)
			}
			if got := Ruby(tt.input); got != tt.ruby {
				t.Errorf("Ruby(%q) = %q, want %q", tt.input, got, tt.ruby)
			}
			gemset, ok := Gemset(tt.input)
			if gemset != tt.gemset || ok != tt.hasGemset {
				t.Errorf("Gemset(%q) = %q, %v, want %q, %v",
					tt.input, gemset, ok, tt.gemset, tt.hasGemset)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		def   string
		want  string
	}{
		{"default", "ruby-2.0.0-p247", "ruby-2.0.0-p247"},
		{"default@teststuff", "ruby-2.0.0", "ruby-2.0.0@teststuff"},
		{"ruby-2.1.5", "ruby-2.0.0", "ruby-2.1.5"},
		{"ruby-2.1.5@myapp", "ruby-2.0.0", "ruby-2.1.5@myapp"},
		{"goruby", "ruby-2.0.0", "goruby"},
		{"", "ruby-2.0.0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input, tt.def); got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.input, tt.def, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Family
	}{
		{"1.8.7", FamilyMRI},
		{"1.9.3-p551", FamilyMRI},
		{"ree-1.8.7-2012.02", FamilyMRI},
		{"ruby-2.1.1", FamilyMRI},
		{"ruby-head", FamilyMRI},
		{"ruby-2.1.1@myapp", FamilyMRI},
		{"jruby-1.7.0", FamilyJRuby},
		{"jruby-head@rails", FamilyJRuby},
		{"goruby", FamilyGoruby},
		{"goruby@scratch", FamilyGoruby},
		{"rbx-2.2.6", FamilyUnknown},
		{"maglev-1.0.0", FamilyUnknown},
		{"1.7.3", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		family Family
		want   string
	}{
		{FamilyMRI, "mri"},
		{FamilyJRuby, "jruby"},
		{FamilyGoruby, "goruby"},
		{FamilyUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.family.String(); got != tt.want {
			t.Errorf("Family(%d).String() = %q, want %q", tt.family, got, tt.want)
		}
	}
}
