// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

const commandSeparator = ";"

// applies commands to one set
type processor[K any] struct {
	set              *avl.Set[K]
	parse            func(string) (K, error)
	log              *logger.L
	out              io.Writer
	showDetail       bool
	checkAfterUpdate bool
}

func newProcessor[K any](set *avl.Set[K], parse func(string) (K, error), log *logger.L, options *Configuration, out io.Writer) *processor[K] {
	return &processor[K]{
		set:              set,
		parse:            parse,
		log:              log,
		out:              out,
		showDetail:       options.ShowDetail,
		checkAfterUpdate: options.CheckAfterUpdate,
	}
}

func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if nil != err {
		return 0, fmt.Errorf("%q: %w", s, fault.ErrInvalidKey)
	}
	return n, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// run all commands, reporting failures to errOut and carrying on
// returns the number of failed commands
func (p *processor[K]) run(commands iter.Seq[[]string], errOut io.Writer) int {
	failures := 0
	for fields := range commands {
		if err := p.process(fields); nil != err {
			failures += 1
			p.log.Warnf("command: %q  error: %s", fields, err)
			fmt.Fprintf(errOut, "%s: %s\n", fields[0], err)
		}
	}
	return failures
}

// process one command
func (p *processor[K]) process(fields []string) error {
	if 0 == len(fields) {
		return nil
	}
	command := fields[0]
	arguments := fields[1:]

	p.log.Debugf("command: %s  arguments: %q", command, arguments)

	switch command {

	case "insert", "add":
		keys, err := p.keys(arguments)
		if nil != err {
			return err
		}
		added := 0
		for _, key := range keys {
			if p.set.Insert(key) {
				added += 1
			}
		}
		p.log.Infof("insert: %d keys  added: %d", len(keys), added)
		fmt.Fprintf(p.out, "added: %d  present: %d\n", added, len(keys)-added)
		return p.afterUpdate()

	case "erase", "delete":
		keys, err := p.keys(arguments)
		if nil != err {
			return err
		}
		removed := 0
		for _, key := range keys {
			if p.set.Erase(key) {
				removed += 1
			}
		}
		p.log.Infof("erase: %d keys  removed: %d", len(keys), removed)
		fmt.Fprintf(p.out, "removed: %d  absent: %d\n", removed, len(keys)-removed)
		return p.afterUpdate()

	case "find":
		key, err := p.key(arguments)
		if nil != err {
			return err
		}
		p.printCursor(p.set.Find(key))

	case "lower-bound", "lb":
		key, err := p.key(arguments)
		if nil != err {
			return err
		}
		p.printCursor(p.set.LowerBound(key))

	case "contains", "has":
		key, err := p.key(arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(p.out, "%t\n", p.set.Contains(key))

	case "rank":
		key, err := p.key(arguments)
		if nil != err {
			return err
		}
		index, ok := p.set.Rank(key)
		if !ok {
			return fmt.Errorf("%v: %w", key, fault.ErrKeyNotFound)
		}
		fmt.Fprintf(p.out, "%d\n", index)

	case "get":
		if 1 != len(arguments) {
			return fault.ErrMissingArgument
		}
		index, err := strconv.Atoi(arguments[0])
		if nil != err {
			return fmt.Errorf("%q: %w", arguments[0], fault.ErrInvalidIndex)
		}
		p.printCursor(p.set.At(index))

	case "size", "len":
		fmt.Fprintf(p.out, "%d\n", p.set.Len())

	case "empty":
		fmt.Fprintf(p.out, "%t\n", p.set.IsEmpty())

	case "height":
		fmt.Fprintf(p.out, "%d\n", p.set.Height())

	case "list":
		p.printKeys(p.set.All())

	case "reverse":
		// walk a cursor back from the end
		p.printKeys(func(yield func(K) bool) {
			for c := p.set.End(); c.Prev(); {
				if !yield(c.Key().Unwrap()) {
					return
				}
			}
		})

	case "print":
		depth := p.set.Fprint(p.out, p.showDetail)
		p.log.Debugf("print depth: %d", depth)

	case "check":
		if err := p.set.Check(); nil != err {
			return fmt.Errorf("%w: %w", fault.ErrCheckFailed, err)
		}
		fmt.Fprintf(p.out, "ok\n")

	case "clear":
		p.set.Clear()
		p.log.Info("cleared")
		fmt.Fprintf(p.out, "ok\n")

	case "help":
		fmt.Fprintf(p.out, "commands: insert erase find lower-bound contains rank get size empty height list reverse print check clear\n")

	default:
		return fmt.Errorf("%q: %w", command, fault.ErrUnknownCommand)
	}
	return nil
}

// one or more keys
func (p *processor[K]) keys(arguments []string) ([]K, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingArgument
	}
	keys := make([]K, 0, len(arguments))
	for _, a := range arguments {
		key, err := p.parse(a)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// exactly one key
func (p *processor[K]) key(arguments []string) (K, error) {
	if 1 != len(arguments) {
		var zero K
		return zero, fault.ErrMissingArgument
	}
	return p.parse(arguments[0])
}

func (p *processor[K]) afterUpdate() error {
	if !p.checkAfterUpdate {
		return nil
	}
	if err := p.set.Check(); nil != err {
		fault.Criticalf("check after update failed: %s", err)
		return fmt.Errorf("%w: %w", fault.ErrCheckFailed, err)
	}
	return nil
}

func (p *processor[K]) printCursor(c avl.Cursor[K]) {
	if key := c.Key(); key.Ok {
		fmt.Fprintf(p.out, "%v\n", key.Value)
		return
	}
	fmt.Fprintf(p.out, "end\n")
}

func (p *processor[K]) printKeys(keys iter.Seq[K]) {
	s := make([]string, 0, p.set.Len())
	for key := range keys {
		s = append(s, fmt.Sprint(key))
	}
	fmt.Fprintf(p.out, "%s\n", strings.Join(s, " "))
}

// split an argument list into commands at separator tokens, a
// separator may also be attached to the end or start of a word
func commandsFromArguments(arguments []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		current := []string{}
		for _, a := range arguments {
			parts := strings.Split(a, commandSeparator)
			for i, part := range parts {
				if i > 0 && len(current) > 0 {
					if !yield(current) {
						return
					}
					current = []string{}
				}
				if "" != part {
					current = append(current, part)
				}
			}
		}
		if len(current) > 0 {
			yield(current)
		}
	}
}

// one command per line, blank lines and lines starting with '#' are
// ignored
func commandsFromReader(r io.Reader, log *logger.L) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if 0 == len(fields) || strings.HasPrefix(fields[0], "#") {
				continue
			}
			if !yield(fields) {
				return
			}
		}
		if err := scanner.Err(); nil != err {
			log.Errorf("read commands error: %s", err)
		}
	}
}
