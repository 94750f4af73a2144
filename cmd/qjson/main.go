// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program qjson decodes, checks, and summarizes JSON text.
//
// Usage:
//
//	qjson decode [--strict] [files...]   # decode and print re-encoded values
//	qjson check [--strict] [files...]    # report whether each input is valid
//	qjson stats [files...]               # print structural statistics
//
// With no files, input is read from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/qjson"
)

var cli struct {
	Strict   bool `help:"Reject input that is not strictly valid JSON."`
	MaxDepth int  `name:"max-depth" help:"Maximum nesting depth (0 for the default, negative for no limit)."`
	Debug    bool `short:"d" help:"Enable debug logging."`

	Decode decodeCmd `cmd:"" help:"Decode each input and print it re-encoded."`
	Check  checkCmd  `cmd:"" help:"Report whether each input is valid JSON."`
	Stats  statsCmd  `cmd:"" help:"Print structural statistics for each input."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("qjson"),
		kong.Description("Decode and check JSON text."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	e := &env{
		opts: qjson.Options{Strict: cli.Strict, MaxDepth: cli.MaxDepth},
		log:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		in:   os.Stdin,
		out:  os.Stdout,
	}
	ctx.FatalIfErrorf(ctx.Run(e))
}

// env carries the settings and I/O streams shared by all commands.
type env struct {
	opts qjson.Options
	log  *slog.Logger
	in   io.Reader
	out  io.Writer
}

// each calls f with the name and contents of each named file, or of the
// standard input if there are no files. It stops at the first error.
func (e *env) each(files []string, f func(name, text string) error) error {
	if len(files) == 0 {
		data, err := io.ReadAll(e.in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return f("<stdin>", string(data))
	}
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		e.log.Debug("read input", "file", name, "bytes", len(data))
		if err := f(name, string(data)); err != nil {
			return err
		}
	}
	return nil
}

type decodeCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Input files (default stdin)."`
}

func (c *decodeCmd) Run(e *env) error {
	return e.each(c.Files, func(name, text string) error {
		v, err := e.opts.Decode(text)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		e.log.Debug("decoded", "file", name, "kind", v.Kind())
		_, err = fmt.Fprintln(e.out, qjson.Encode(v))
		return err
	})
}

type checkCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Input files (default stdin)."`
}

func (c *checkCmd) Run(e *env) error {
	var nbad int
	err := e.each(c.Files, func(name, text string) error {
		_, err := e.opts.Decode(text)
		var derr *qjson.DecodeError
		if errors.As(err, &derr) {
			nbad++
			e.log.Debug("invalid input", "file", name, "kind", derr.Kind.String(),
				"offset", derr.Offset, "line", derr.Location.Line, "column", derr.Location.Column)
			_, err = fmt.Fprintf(e.out, "%s:%d:%d: %v\n", name, derr.Location.Line, derr.Location.Column, derr.Kind)
			return err
		} else if err != nil {
			return err
		}
		_, err = fmt.Fprintf(e.out, "%s: ok\n", name)
		return err
	})
	if err != nil {
		return err
	} else if nbad > 0 {
		return fmt.Errorf("%d invalid input(s)", nbad)
	}
	return nil
}

type statsCmd struct {
	Files []string `arg:"" optional:"" type:"existingfile" help:"Input files (default stdin)."`
}

func (c *statsCmd) Run(e *env) error {
	return e.each(c.Files, func(name, text string) error {
		doc, err := e.opts.Scan(text)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		st := doc.Stats()
		_, err = fmt.Fprintf(e.out, "%s: bytes=%d terms=%d strings=%d literals=%d arrays=%d objects=%d depth=%d\n",
			name, len(text), st.Terms, st.Strings, st.Literals, st.Arrays, st.Objects, st.MaxDepth)
		return err
	})
}
