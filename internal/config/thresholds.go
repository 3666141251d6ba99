package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"celebrate/internal/engine"
	"celebrate/internal/log"
)

// Table names used by the screens.
const (
	TableBirthday = "birthday"
	TableDiscount = "discount"
	TableGreeting = "greeting"
	// TableHighlight splits home birthdays into highlights and the rest.
	TableHighlight = "highlight"
)

// TableSpec is the YAML form of one threshold table.
type TableSpec struct {
	Tiers        []TierSpec `yaml:"tiers"`
	Default      string     `yaml:"default"`
	Negative     string     `yaml:"negative"`
	NegativeTier string     `yaml:"negative_tier"`
}

// TierSpec is one closed upper bound.
type TierSpec struct {
	Max  float64 `yaml:"max"`
	Tier string  `yaml:"tier"`
}

// Thresholds holds the classification tables by name.
type Thresholds map[string]engine.ThresholdTable

// DefaultThresholds returns the built-in tables.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TableBirthday: engine.MustThresholdTable([]engine.Threshold{
			{Max: 0, Tier: "today"},
			{Max: 3, Tier: "urgent"},
			{Max: 7, Tier: "soon"},
		}, "normal", engine.WithName(TableBirthday)),
		TableDiscount: engine.MustThresholdTable([]engine.Threshold{
			{Max: 0, Tier: "none"},
			{Max: 15, Tier: "discount"},
		}, "deal", engine.WithName(TableDiscount)),
		TableGreeting: engine.MustThresholdTable([]engine.Threshold{
			{Max: 11, Tier: "morning"},
			{Max: 16, Tier: "afternoon"},
		}, "evening", engine.WithName(TableGreeting), engine.WithNegativePolicy(engine.NegativeReject)),
		TableHighlight: engine.MustThresholdTable([]engine.Threshold{
			{Max: 1, Tier: "highlight"},
		}, "upcoming", engine.WithName(TableHighlight)),
	}
}

// LoadThresholds returns the defaults overridden by the tables in path.
// An empty path yields the defaults.
func LoadThresholds(path string, logger *log.Logger) (Thresholds, error) {
	logger = log.OrDefault(logger, log.ComponentConfig)
	if path == "" {
		return DefaultThresholds(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thresholds file: %w", err)
	}
	th, err := ParseThresholds(raw)
	if err != nil {
		return nil, err
	}
	for _, name := range th.Names() {
		table := th[name]
		logger.Debug("Threshold table configured",
			log.FieldOperation, log.OpLoad,
			log.FieldTable, name,
			log.FieldTier, table.Fallback(),
			log.FieldCount, len(table.Bounds()))
	}
	logger.Info("Loaded threshold overrides", "path", path, log.FieldCount, len(th))
	return th, nil
}

// ParseThresholds decodes YAML tables and merges them over the defaults.
func ParseThresholds(raw []byte) (Thresholds, error) {
	var specs map[string]TableSpec
	if err := yaml.Unmarshal(raw, &specs); err != nil {
		return nil, fmt.Errorf("parse thresholds: %w", err)
	}

	out := DefaultThresholds()
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		table, err := specs[name].Build(name)
		if err != nil {
			return nil, fmt.Errorf("threshold table %q: %w", name, err)
		}
		out[name] = table
	}
	return out, nil
}

// Build validates the spec and returns the table labeled name.
func (s TableSpec) Build(name string) (engine.ThresholdTable, error) {
	bounds := make([]engine.Threshold, len(s.Tiers))
	for i, t := range s.Tiers {
		bounds[i] = engine.Threshold{Max: t.Max, Tier: engine.Tier(t.Tier)}
	}
	opts := []engine.TableOption{engine.WithName(name)}
	switch engine.NegativePolicy(s.Negative) {
	case "":
	case engine.NegativeLabel:
		opts = append(opts, engine.WithNegativeTier(engine.Tier(s.NegativeTier)))
	default:
		opts = append(opts, engine.WithNegativePolicy(engine.NegativePolicy(s.Negative)))
	}
	return engine.NewThresholdTable(bounds, engine.Tier(s.Default), opts...)
}

// Names lists the configured tables in sorted order.
func (t Thresholds) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the named table.
func (t Thresholds) Table(name string) (engine.ThresholdTable, error) {
	table, ok := t[name]
	if !ok {
		return engine.ThresholdTable{}, fmt.Errorf("threshold table %q is not configured", name)
	}
	return table, nil
}
