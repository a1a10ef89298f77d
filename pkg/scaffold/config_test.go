package scaffold

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/systemstart/kickstart/pkg/api"
)

func TestNewConfiguration(t *testing.T) {
	sel := api.Selection{
		ProjectName:         "app",
		Template:            api.TemplateJEMN,
		InitGit:             true,
		UsePackageManager:   true,
		PackageManager:      api.PackageManagerPNPM,
		InstallDependencies: true,
	}

	cfg, err := NewConfiguration(sel, "/work", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TargetDirectory != filepath.Join("/work", "app") {
		t.Errorf("target = %q", cfg.TargetDirectory)
	}
	if cfg.TemplateDirectory != "bundled:jemn" || cfg.TemplateFS == nil {
		t.Errorf("template not resolved: %q", cfg.TemplateDirectory)
	}
	if cfg.PackageManager != api.PackageManagerPNPM || !cfg.InitGit || !cfg.UsePackageManager || !cfg.InstallDependencies {
		t.Errorf("flags not carried over: %+v", cfg)
	}
}

func TestNewConfiguration_InstallRequiresPackageManager(t *testing.T) {
	sel := api.Selection{ProjectName: "app", Template: api.TemplateBasic, InstallDependencies: true}

	cfg, err := NewConfiguration(sel, "/work", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InstallDependencies {
		t.Error("install must be off without a package manager")
	}
	if cfg.PackageManager != api.PackageManagerNPM {
		t.Errorf("expected default package manager, got %q", cfg.PackageManager)
	}
}

func TestNewConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name string
		sel  api.Selection
		want error
	}{
		{"name starting with a digit", api.Selection{ProjectName: "1abc", Template: api.TemplateBasic}, api.ErrInvalidProjectName},
		{"unknown template", api.Selection{ProjectName: "app", Template: "rails"}, api.ErrUnknownTemplate},
		{"unknown package manager", api.Selection{ProjectName: "app", Template: api.TemplateBasic, UsePackageManager: true, PackageManager: "bower"}, api.ErrUnknownPackageManager},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConfiguration(tt.sel, "/work", ""); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
