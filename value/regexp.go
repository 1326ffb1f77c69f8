// Copyright (c) 2026, Transis Project.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package value

import (
	"errors"
	"fmt"
	"regexp"
)

// RegexpNew creates a pattern value from source text and a flag
// string. Flags follow the usual scripting convention: g (global),
// i (ignore case), m (multiline), y (sticky); declaration order is
// irrelevant. RegexpNew will panic if the source does not compile or a
// flag is unrecognized or duplicated.
func RegexpNew(source, flags string) *Regexp {
	fs, err := parseFlags(flags)
	if err != nil {
		panic(err)
	}
	if _, err := regexp.Compile(modePrefix(fs) + source); err != nil {
		panic(fmt.Errorf("cannot create pattern %q: %v", source, err))
	}
	return &Regexp{
		source: source,
		flags:  fs,
	}
}

// Regexp is a compiled-pattern value: source text plus a flag set.
// Two patterns are equal when their source text is identical and their
// flag sets match, regardless of flag declaration order.
type Regexp struct {
	source string
	flags  flagSet
}

type flagSet struct {
	global     bool
	ignoreCase bool
	multiline  bool
	sticky     bool
}

func parseFlags(flags string) (flagSet, error) {
	var fs flagSet
	for _, r := range flags {
		switch r {
		case 'g':
			if fs.global {
				return fs, errors.New(
					"duplicate pattern flag g")
			}
			fs.global = true
		case 'i':
			if fs.ignoreCase {
				return fs, errors.New(
					"duplicate pattern flag i")
			}
			fs.ignoreCase = true
		case 'm':
			if fs.multiline {
				return fs, errors.New(
					"duplicate pattern flag m")
			}
			fs.multiline = true
		case 'y':
			if fs.sticky {
				return fs, errors.New(
					"duplicate pattern flag y")
			}
			fs.sticky = true
		default:
			return fs, fmt.Errorf(
				"unrecognized pattern flag %q", string(r))
		}
	}
	return fs, nil
}

// modePrefix renders the flag bits that alter matching as an inline
// mode modifier so the source can be validated by the go compiler.
func modePrefix(fs flagSet) string {
	mode := ""
	if fs.ignoreCase {
		mode += "i"
	}
	if fs.multiline {
		mode += "m"
	}
	if mode == "" {
		return ""
	}
	return "(?" + mode + ")"
}

// Source returns the pattern's source text.
func (re *Regexp) Source() string {
	return re.source
}

// Flags returns the flag set rendered in canonical order.
func (re *Regexp) Flags() string {
	out := ""
	if re.flags.global {
		out += "g"
	}
	if re.flags.ignoreCase {
		out += "i"
	}
	if re.flags.multiline {
		out += "m"
	}
	if re.flags.sticky {
		out += "y"
	}
	return out
}

// Global returns whether the pattern carries the global flag.
func (re *Regexp) Global() bool { return re.flags.global }

// IgnoreCase returns whether the pattern carries the ignore-case flag.
func (re *Regexp) IgnoreCase() bool { return re.flags.ignoreCase }

// Multiline returns whether the pattern carries the multiline flag.
func (re *Regexp) Multiline() bool { return re.flags.multiline }

// Sticky returns whether the pattern carries the sticky flag.
func (re *Regexp) Sticky() bool { return re.flags.sticky }

// Compile materializes the pattern as a stdlib matcher.
func (re *Regexp) Compile() (*regexp.Regexp, error) {
	return regexp.Compile(modePrefix(re.flags) + re.source)
}

// Equal implements equality for pattern values.
func (re *Regexp) Equal(other interface{}) bool {
	return Equal(re, other)
}

// String returns the pattern in literal notation.
func (re *Regexp) String() string {
	return "/" + re.source + "/" + re.Flags()
}
