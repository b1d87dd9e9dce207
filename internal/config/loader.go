package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/rpngrid/internal/ctxlog"
)

// Load parses and decodes the settings file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	return decode(ctx, path, hclFile)
}

// Parse decodes settings from an in-memory HCL document.
func Parse(ctx context.Context, src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", filename, diags)
	}
	return decode(ctx, filename, hclFile)
}

func decode(ctx context.Context, name string, hclFile *hcl.File) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", name, diags)
	}

	ctxlog.FromContext(ctx).Debug("Settings file decoded.", "file", name,
		"output", f.Output != nil,
		"log", f.Log != nil,
	)
	return &f, nil
}
