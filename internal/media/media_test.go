package media

import (
	"path/filepath"
	"testing"
	"time"
)

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name    string
		probe   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "string duration",
			probe: `{"streams":[],"format":{"filename":"a.mp3","duration":"215.040000"}}`,
			want:  215040 * time.Millisecond,
		},
		{
			name:  "numeric duration",
			probe: `{"format":{"duration":1.5}}`,
			want:  1500 * time.Millisecond,
		},
		{name: "missing duration", probe: `{"format":{}}`, wantErr: true},
		{name: "zero duration", probe: `{"format":{"duration":"0"}}`, wantErr: true},
		{name: "not json", probe: `ffprobe: error`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbeDuration(tt.probe)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDurationMissingFile(t *testing.T) {
	_, err := Duration(filepath.Join(t.TempDir(), "missing.mp3"), time.Second)
	if err == nil {
		t.Error("expected error for missing file")
	}
}
