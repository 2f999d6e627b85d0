package transcode

import "testing"

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    int64
		wantErr bool
	}{
		{"WholeSeconds", `{"format":{"duration":"7200.000000"}}`, 7200, false},
		{"Truncated", `{"format":{"duration":"95.940000"}}`, 95, false},
		{"SubSecond", `{"format":{"duration":"0.480000"}}`, 0, false},
		{"Negative", `{"format":{"duration":"-3.5"}}`, 0, false},
		{"MissingFormat", `{}`, 0, true},
		{"EmptyDuration", `{"format":{"duration":""}}`, 0, true},
		{"NotANumber", `{"format":{"duration":"N/A"}}`, 0, true},
		{"InvalidJSON", `not json`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbeDuration([]byte(tt.output))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("duration = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildEncodeArgs(t *testing.T) {
	args := buildEncodeArgs("/media/a/src.mp4", "/media/a/src_720p.mp4.tmp-x", QualityPresets[3])

	want := []string{
		"-i", "/media/a/src.mp4",
		"-vf", "scale=1280:720",
		"-b:v", "5000k",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-strict", "experimental",
		"-y", "/media/a/src_720p.mp4.tmp-x",
	}
	if len(args) != len(want) {
		t.Fatalf("got %d args, want %d: %v", len(args), len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"single", "single"},
		{"first\nsecond\n", "second"},
		{"first\n  padded  \n", "padded"},
	}
	for _, tt := range tests {
		if got := lastLine(tt.in); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
