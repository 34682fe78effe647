package sanitize

import "testing"

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Ada Lovelace", "Ada Lovelace"},
		{"trims whitespace", "  Ada  ", "Ada"},
		{"strips tags", "<b>Ada</b>", "Ada"},
		{"strips script", `<script>alert("x")</script>Ada`, "Ada"},
		{"strips img onerror", `<img src=x onerror=alert(1)>Grace`, "Grace"},
		{"keeps unicode", "Zoë Müller", "Zoë Müller"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Field(tt.input); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	got := Fields([]string{" <i>a</i> ", "b"})
	if got[0] != "a" || got[1] != "b" {
		t.Errorf("Fields = %q", got)
	}
}
