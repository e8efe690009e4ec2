package template

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "My App"},
		{"my_cool-app", "My Cool App"},
		{"dashboard", "Dashboard"},
		{"API2", "Api2"},
		{"---", "---"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.in); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewTemplateContext(t *testing.T) {
	ctx := NewTemplateContext(WithProject("my-app"))
	if ctx.ProjectName != "my-app" {
		t.Errorf("ProjectName = %q", ctx.ProjectName)
	}
	if ctx.DisplayName != "My App" {
		t.Errorf("DisplayName = %q", ctx.DisplayName)
	}

	empty := NewTemplateContext()
	if empty.ProjectName != "" || empty.DisplayName != "" {
		t.Errorf("empty context = %+v", empty)
	}
}
