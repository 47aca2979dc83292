package game

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("LIFE_SPACE_HTTP_ADDR", "")
	t.Setenv("LIFE_SPACE_STORAGE_BACKEND", "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("addr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.Backend != "sqlite" {
		t.Fatalf("backend = %q, want %q", cfg.Backend, "sqlite")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LIFE_SPACE_HTTP_ADDR", "env:9000")
	t.Setenv("LIFE_SPACE_STORAGE_BACKEND", "kv")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-addr", "flag:9001"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag:9001" {
		t.Fatalf("addr = %q, want flag override", cfg.HTTPAddr)
	}
	if cfg.Backend != "kv" {
		t.Fatalf("backend = %q, want env value", cfg.Backend)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}
