package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocalConfig(t *testing.T) {
	tests := []struct {
		name         string
		configYAML   string
		wantTeam     string
		wantAssignee string
	}{
		{
			name:       "empty config",
			configYAML: "",
		},
		{
			name:       "team only",
			configYAML: "team: ENG\n",
			wantTeam:   "ENG",
		},
		{
			name:         "team and assignee",
			configYAML:   "team: \"DES\"\nassignee: me\n",
			wantTeam:     "DES",
			wantAssignee: "me",
		},
		{
			name:         "team in comment should not match",
			configYAML:   "# team: OPS\nassignee: alex@co.com\nunknown: 1\n",
			wantTeam:     "",
			wantAssignee: "alex@co.com",
		},
		{
			name:       "invalid yaml",
			configYAML: "team: [unclosed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), LocalConfigFile)
			if err := os.WriteFile(path, []byte(tt.configYAML), 0600); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg := LoadLocalConfig(path)
			if cfg.Team != tt.wantTeam {
				t.Errorf("Team = %q, want %q", cfg.Team, tt.wantTeam)
			}
			if cfg.Assignee != tt.wantAssignee {
				t.Errorf("Assignee = %q, want %q", cfg.Assignee, tt.wantAssignee)
			}
		})
	}
}

func TestLoadLocalConfigMissing(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.yaml")} {
		cfg := LoadLocalConfig(path)
		if cfg == nil || *cfg != (LocalConfig{}) {
			t.Errorf("LoadLocalConfig(%q) = %+v, want empty", path, cfg)
		}
	}
}

func TestFindLocalConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "svc", "api", "handlers")
	if err := os.MkdirAll(nested, 0750); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "svc", LocalConfigFile)
	if err := os.WriteFile(want, []byte("team: API\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if got := FindLocalConfig(nested); got != want {
		t.Errorf("FindLocalConfig() = %q, want %q", got, want)
	}
	if got := FindLocalConfig(root); got != "" {
		t.Errorf("FindLocalConfig(root) = %q, want none", got)
	}
}

func TestFindLocalConfigIgnoresDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, LocalConfigFile), 0750); err != nil {
		t.Fatal(err)
	}
	if got := FindLocalConfig(root); got != "" {
		t.Errorf("FindLocalConfig() = %q, want none", got)
	}
}

func TestDefaultTeam(t *testing.T) {
	useConfigDir(t)
	t.Setenv("LINEAR_TEAM", "ENV")
	if err := Initialize(); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	if got := DefaultTeam(); got != "ENV" {
		t.Errorf("DefaultTeam() without .linear.yaml = %q, want ENV", got)
	}

	if err := os.WriteFile(filepath.Join(dir, LocalConfigFile), []byte("team: LOCAL\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := DefaultTeam(); got != "LOCAL" {
		t.Errorf("DefaultTeam() = %q, want LOCAL", got)
	}
}
