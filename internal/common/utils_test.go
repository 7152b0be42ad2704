package common

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestContentHash(t *testing.T) {
	got := ContentHash([]byte("the quick fox"))
	if len(got) != 64 {
		t.Fatalf("ContentHash() length = %d, want 64", len(got))
	}
	if got != ContentHash([]byte("the quick fox")) {
		t.Error("ContentHash() is not deterministic")
	}
	if got == ContentHash([]byte("the quick fox.")) {
		t.Error("ContentHash() collided for different content")
	}
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        bool
		wantErr     bool
		wantRetries int
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "uppercase word", input: "YES\n", want: true},
		{name: "retries on junk", input: "maybe\n\nn\n", want: false, wantRetries: 2},
		{name: "answer without newline", input: "y", want: true},
		{name: "eof without answer", input: "what\n", wantErr: true, wantRetries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := AskYesNo(strings.NewReader(tt.input), &out, "Case insensitive?")
			if (err != nil) != tt.wantErr {
				t.Fatalf("AskYesNo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("AskYesNo() error = %v, want io.ErrUnexpectedEOF", err)
			}
			if got != tt.want {
				t.Errorf("AskYesNo() = %v, want %v", got, tt.want)
			}
			if n := strings.Count(out.String(), "Invalid input"); n != tt.wantRetries {
				t.Errorf("retries = %d, want %d (output %q)", n, tt.wantRetries, out.String())
			}
		})
	}
}
