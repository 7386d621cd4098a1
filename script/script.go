// Package script drives a float64 LinkedList from a flat list of command
// tokens such as "push 1 push 2 insert 1 99 remove 1 average".
package script

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"dsa_code/heap/linked_list"
)

var ErrParse = errors.New("parse error")

type Kind int

const (
	Push Kind = iota
	Unshift
	Pop
	Shift
	Get
	Set
	Insert
	Remove
	Average
	Len
	Print
)

type command struct {
	name string
	// argument layout: an index, a value, or both
	index bool
	value bool
}

var commands = map[Kind]command{
	Push:    {name: "push", value: true},
	Unshift: {name: "unshift", value: true},
	Pop:     {name: "pop"},
	Shift:   {name: "shift"},
	Get:     {name: "get", index: true},
	Set:     {name: "set", index: true, value: true},
	Insert:  {name: "insert", index: true, value: true},
	Remove:  {name: "remove", index: true},
	Average: {name: "average"},
	Len:     {name: "len"},
	Print:   {name: "print"},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(commands))
	for k, c := range commands {
		m[c.name] = k
	}
	return m
}()

func (k Kind) String() string {
	if c, ok := commands[k]; ok {
		return c.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is one parsed command.
type Op struct {
	Kind  Kind
	Index int
	Value float64
}

func (op Op) String() string {
	c := commands[op.Kind]
	switch {
	case c.index && c.value:
		return fmt.Sprintf("%s %d %g", c.name, op.Index, op.Value)
	case c.index:
		return fmt.Sprintf("%s %d", c.name, op.Index)
	case c.value:
		return fmt.Sprintf("%s %g", c.name, op.Value)
	}
	return c.name
}

// Parse turns tokens into ops. Errors report the position of the
// offending token.
func Parse(args []string) ([]Op, error) {
	var ops []Op
	for pos := 0; pos < len(args); {
		kind, ok := byName[args[pos]]
		if !ok {
			return nil, errors.Wrapf(ErrParse, "token %d: unknown command %q", pos, args[pos])
		}
		c := commands[kind]
		op := Op{Kind: kind}
		pos++

		if c.index {
			if pos >= len(args) {
				return nil, errors.Wrapf(ErrParse, "token %d: %s needs an index", pos, c.name)
			}
			idx, err := strconv.Atoi(args[pos])
			if err != nil {
				return nil, errors.Wrapf(ErrParse, "token %d: bad index %q", pos, args[pos])
			}
			op.Index = idx
			pos++
		}
		if c.value {
			if pos >= len(args) {
				return nil, errors.Wrapf(ErrParse, "token %d: %s needs a value", pos, c.name)
			}
			v, err := strconv.ParseFloat(args[pos], 64)
			if err != nil {
				return nil, errors.Wrapf(ErrParse, "token %d: bad value %q", pos, args[pos])
			}
			op.Value = v
			pos++
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Result records what one op produced. Output is empty for ops that
// produce nothing.
type Result struct {
	Op     Op
	Output string
	Err    error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Op, r.Err)
	}
	if r.Output == "" {
		return r.Op.String()
	}
	return fmt.Sprintf("%s: %s", r.Op, r.Output)
}

type Runner struct {
	List            *linked_list.LinkedList[float64]
	Log             *logrus.Logger
	ContinueOnError bool
}

func NewRunner(list *linked_list.LinkedList[float64], log *logrus.Logger) *Runner {
	return &Runner{List: list, Log: log}
}

// Run executes ops in order. A failing op stops the run unless
// ContinueOnError is set; the results so far are returned either way.
func (r *Runner) Run(ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for i, op := range ops {
		res := r.step(op)
		results = append(results, res)

		entry := r.Log.WithFields(logrus.Fields{
			"step": i,
			"op":   op.String(),
			"len":  r.List.Len(),
		})
		if res.Err != nil {
			if !r.ContinueOnError {
				entry.WithError(res.Err).Error("op failed")
				return results, errors.Wrapf(res.Err, "step %d (%s)", i, op)
			}
			entry.WithError(res.Err).Warn("op failed, continuing")
			continue
		}
		entry.WithField("out", res.Output).Debug("op done")
	}
	return results, nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (r *Runner) step(op Op) Result {
	res := Result{Op: op}
	l := r.List
	var v float64
	switch op.Kind {
	case Push:
		l.Push(op.Value)
	case Unshift:
		l.Unshift(op.Value)
	case Pop:
		v, res.Err = l.Pop()
		res.Output = format(v)
	case Shift:
		v, res.Err = l.Shift()
		res.Output = format(v)
	case Get:
		v, res.Err = l.GetAt(op.Index)
		res.Output = format(v)
	case Set:
		res.Err = l.SetAt(op.Index, op.Value)
	case Insert:
		res.Err = l.InsertAt(op.Index, op.Value)
	case Remove:
		v, res.Err = l.RemoveAt(op.Index)
		res.Output = format(v)
	case Average:
		res.Output = format(linked_list.Average(l))
	case Len:
		res.Output = strconv.Itoa(l.Len())
	case Print:
		res.Output = l.String()
	default:
		res.Err = errors.Errorf("unknown op kind %d", int(op.Kind))
	}
	if res.Err != nil {
		res.Output = ""
	}
	return res
}
