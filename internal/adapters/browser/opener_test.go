package browser

import (
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr bool
	}{
		{
			name:   "https url",
			rawURL: "https://i.pinimg.com/736x/c0/a1/ae/hot-tub.jpg",
			want:   "https://i.pinimg.com/736x/c0/a1/ae/hot-tub.jpg",
		},
		{
			name:   "surrounding whitespace",
			rawURL: "  http://example.com/a.jpg ",
			want:   "http://example.com/a.jpg",
		},
		{
			name:    "empty",
			rawURL:  "",
			wantErr: true,
		},
		{
			name:    "data uri",
			rawURL:  "data:image/jpeg;base64,AAAA",
			wantErr: true,
		},
		{
			name:    "file scheme",
			rawURL:  "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "relative",
			rawURL:  "/images/a.jpg",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateURL(tt.rawURL)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ValidateURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_PerPlatform(t *testing.T) {
	t.Setenv("BROWSER", "")

	tests := []struct {
		goos     string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantArgs: []string{"open", "https://example.com"}},
		{goos: "linux", wantArgs: []string{"xdg-open", "https://example.com"}},
		{goos: "windows", wantArgs: []string{"cmd", "/c", "start", "", "https://example.com"}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o := &Opener{goos: tt.goos}
			cmd, err := o.Command("https://example.com")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %q, want %q", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args[%d] = %q, want %q", i, cmd.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestCommand_BrowserEnv(t *testing.T) {
	t.Setenv("BROWSER", "firefox")

	cmd, err := (&Opener{goos: "linux"}).Command("https://example.com")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if cmd.Args[0] != "firefox" {
		t.Errorf("Args[0] = %q, want firefox", cmd.Args[0])
	}
}
