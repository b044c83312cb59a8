package gateway

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"amount": 10}`, `{"amount": 10}`},
		{"plain fences", "```\n{\"amount\": 10}\n```", `{"amount": 10}`},
		{"json tag", "```json\n{\"amount\": 10}\n```", `{"amount": 10}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", `{}`},
		{"single line fences", "```{}```", `{}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
