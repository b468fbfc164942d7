package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iro-cli/iro/icon"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// UnknownKeyError reports a key that is not registered, along with the closest registered one.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf(
		"unknown key %s, did you mean %s?",
		style.Fg(style.Red)(e.Key),
		style.Fg(style.Yellow)(e.Closest),
	)
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})

	return Field{}, &UnknownKeyError{Key: k, Closest: closest}
}

var validators = map[string]func(v any) error{
	key.OutputSwatchWidth: nonNegative,
	key.HistoryLimit:      nonNegative,
	key.IconsVariant:      oneOf(icon.AvailableVariants()...),
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
}

func nonNegative(v any) error {
	if v.(int) < 0 {
		return fmt.Errorf("%d is negative", v)
	}
	return nil
}

func oneOf(options ...string) func(v any) error {
	return func(v any) error {
		if !lo.Contains(options, v.(string)) {
			return fmt.Errorf("%q is not one of %v", v, options)
		}
		return nil
	}
}

// Parse converts command-line values to the type of the field's default
// and checks them against the field's allowed values.
func Parse(k string, raw []string) (any, error) {
	field, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", k)
	}

	var v any
	switch field.Value.(type) {
	case string:
		v = raw[0]
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", k, raw[0])
		}
		v = n
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", k, raw[0])
		}
		v = b
	case []string:
		v = raw
	default:
		return nil, fmt.Errorf("%s has unsupported type %s", k, field.typeName())
	}

	if validate, ok := validators[k]; ok {
		if err := validate(v); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", k, err)
		}
	}

	return v, nil
}

// Write saves the current configuration to FilePath, creating the file when missing.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}
