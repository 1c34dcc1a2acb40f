package posts

import (
	"testing"
)

func TestContentHash(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{
			name:    "known digest",
			title:   "hello",
			content: "world",
			// md5("helloworld")
			want: "fc5e038d38a57032085441e7fe7010b0",
		},
		{
			name:    "empty inputs",
			title:   "",
			content: "",
			// md5("")
			want: "d41d8cd98f00b204e9800998ecf8427e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHash(tt.title, tt.content)
			if got != tt.want {
				t.Errorf("ContentHash(%q, %q) = %q, want %q", tt.title, tt.content, got, tt.want)
			}
		})
	}
}

func TestContentHash_Deterministic(t *testing.T) {
	first := ContentHash("E2E Test Post", "E2E Content")
	for i := 0; i < 10; i++ {
		if got := ContentHash("E2E Test Post", "E2E Content"); got != first {
			t.Fatalf("hash not deterministic: %q != %q", got, first)
		}
	}

	if len(first) != 32 {
		t.Errorf("expected 32-character digest, got %d characters", len(first))
	}
}

func TestContentHash_ChangeSensitivity(t *testing.T) {
	base := ContentHash("title", "content")

	if got := ContentHash("title2", "content"); got == base {
		t.Error("changing title did not change the hash")
	}
	if got := ContentHash("title", "content2"); got == base {
		t.Error("changing content did not change the hash")
	}
}
