// SPDX-License-Identifier: MIT

// Command mppcalc runs one matrix algorithm on a matrix given on the command
// line or in a protobuf file.
//
// Usage:
//
//	mppcalc -op det -m "7 3 1; 8 8 2; 5 8 2"
//	mppcalc -op inverse -type int -m "2 1; 1 1" -out inv.pb -heatmap inv.png
//	mppcalc -op solve -pivot -m "0 1 2; 1 0 3; 4 5 6" -b "1; 2; 3"
//	mppcalc -op block -block 0,0,2,2 -in m.pb
//
// Operations: det, inverse, lu, plu, transpose, block, singular, solve, format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/mpp/matrix"
	"github.com/katalvlaran/mpp/matrix/codec"
	"github.com/katalvlaran/mpp/matrix/ops"
	"github.com/katalvlaran/mpp/matrix/render"
)

var log = logging.Logger("mpp/cmd")

// errUsage reports invalid flags or arguments.
var errUsage = errors.New("usage")

type config struct {
	op        string
	elemType  string
	text      string
	in        string
	rhs       string
	block     string
	out       string
	heatmap   string
	title     string
	pivot     bool
	unchecked bool
	logLevel  string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("mppcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var c config
	fs.StringVar(&c.op, "op", "det", "Operation: det, inverse, lu, plu, transpose, block, singular, solve, format")
	fs.StringVar(&c.elemType, "type", "float", "Element type: float or int")
	fs.StringVar(&c.text, "m", "", `Matrix in text form, e.g. "1 2; 3 4"`)
	fs.StringVar(&c.in, "in", "", "Read the matrix from a protobuf file instead of -m")
	fs.StringVar(&c.rhs, "b", "", "Right-hand side for solve, in text form")
	fs.StringVar(&c.block, "block", "", "Block bounds for block: top,left,bottom,right")
	fs.StringVar(&c.out, "out", "", "Write the matrix result as protobuf to this file (not for det, singular, lu, plu)")
	fs.StringVar(&c.heatmap, "heatmap", "", "Render the matrix result to this image file, png, svg or pdf (not for det, singular, lu, plu)")
	fs.StringVar(&c.title, "title", "", "Heat map title")
	fs.BoolVar(&c.pivot, "pivot", false, "Use partial pivoting")
	fs.BoolVar(&c.unchecked, "unchecked", false, "Skip the square check and use the leading square block")
	fs.StringVar(&c.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if (c.text == "") == (c.in == "") {
		return nil, fmt.Errorf("%w: exactly one of -m and -in is required", errUsage)
	}
	if c.out != "" || c.heatmap != "" {
		switch c.op {
		case "det", "singular", "lu", "plu":
			return nil, fmt.Errorf("%w: -out and -heatmap need a single matrix result, %s has none", errUsage, c.op)
		}
	}

	return &c, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "mppcalc: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run executes one invocation and writes the result to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, err := logging.LevelFromString(c.logLevel)
	if err != nil {
		return fmt.Errorf("%w: log level %q", errUsage, c.logLevel)
	}
	logging.SetAllLoggers(level)

	switch c.elemType {
	case "float":
		return calc[float64](c, stdout)
	case "int":
		return calc[int64](c, stdout)
	default:
		return fmt.Errorf("%w: element type %q", errUsage, c.elemType)
	}
}

// output is what an operation produced: text for stdout and, for matrix
// results, the matrix to encode or draw.
type output[T matrix.Number] struct {
	text string
	m    *matrix.Matrix[T]
}

func calc[T matrix.Number](c *config, stdout io.Writer) error {
	a, err := load[T](c)
	if err != nil {
		return err
	}
	log.Debugf("input %dx%d, op %s", a.Rows(), a.Cols(), c.op)

	var opts []ops.Option
	if c.pivot {
		opts = append(opts, ops.WithPartialPivoting())
	}
	if c.unchecked {
		opts = append(opts, ops.WithUnchecked())
	}

	res, asFloat, err := apply(c, a, opts)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(stdout, res.text); err != nil {
		return err
	}

	switch {
	case res.m != nil:
		return emit[T](c, res.m)
	case asFloat != nil:
		return emit[float64](c, asFloat)
	case c.out != "" || c.heatmap != "":
		return fmt.Errorf("%w: -out and -heatmap need a single matrix result, %s has none", errUsage, c.op)
	}

	return nil
}

// apply runs the operation. Results in T come back in output.m and the
// float64 solution of solve comes back separately. Scalar results and the
// multi-matrix LU family leave both nil.
func apply[T matrix.Number](c *config, a *matrix.Matrix[T], opts []ops.Option) (output[T], *matrix.Matrix[float64], error) {
	var res output[T]
	switch c.op {
	case "det":
		d, err := ops.Det[T](a, opts...)
		if err != nil {
			return res, nil, err
		}
		res.text = fmt.Sprintln(d)
	case "singular":
		s, err := ops.Singular[T](a, opts...)
		if err != nil {
			return res, nil, err
		}
		res.text = fmt.Sprintln(s)
	case "inverse":
		inv, err := ops.Inverse[T](a, opts...)
		if err != nil {
			return res, nil, err
		}
		res.text, res.m = inv.String(), inv
	case "transpose":
		t, err := ops.Transpose[T](a)
		if err != nil {
			return res, nil, err
		}
		res.text, res.m = t.String(), t
	case "format":
		res.text, res.m = codec.Format[T](a)+"\n", a
	case "block":
		b, err := parseBlock(c.block)
		if err != nil {
			return res, nil, err
		}
		blk, err := ops.Block[T](a, b[0], b[1], b[2], b[3])
		if err != nil {
			return res, nil, err
		}
		res.text, res.m = blk.String(), blk
	case "lu":
		l, u, err := ops.LU[T](a, opts...)
		if err != nil {
			return res, nil, err
		}
		res.text = "L:\n" + l.String() + "U:\n" + u.String()
	case "plu":
		p, l, u, err := ops.PLU[T](a, opts...)
		if err != nil {
			return res, nil, err
		}
		res.text = "P:\n" + p.String() + "L:\n" + l.String() + "U:\n" + u.String()
	case "solve":
		if c.rhs == "" {
			return res, nil, fmt.Errorf("%w: solve needs -b", errUsage)
		}
		b, err := codec.Parse[T](c.rhs)
		if err != nil {
			return res, nil, err
		}
		x, err := ops.Solve[T](a, b, opts...)
		if err != nil {
			return res, nil, err
		}
		res.text = x.String()

		return res, x, nil
	default:
		return res, nil, fmt.Errorf("%w: unknown operation %q", errUsage, c.op)
	}

	return res, nil, nil
}

func load[T matrix.Number](c *config) (*matrix.Matrix[T], error) {
	if c.text != "" {
		return codec.Parse[T](c.text)
	}
	b, err := os.ReadFile(c.in)
	if err != nil {
		return nil, err
	}

	return codec.Unmarshal[T](b)
}

func emit[T matrix.Number](c *config, m *matrix.Matrix[T]) error {
	if c.out != "" {
		b, err := codec.Marshal[T](m)
		if err != nil {
			return err
		}
		if err = os.WriteFile(c.out, b, 0o644); err != nil {
			return err
		}
		log.Infof("wrote %s", c.out)
	}
	if c.heatmap != "" {
		var opts []render.Option
		if c.title != "" {
			opts = append(opts, render.WithTitle(c.title))
		}
		if err := render.Save[T](m, c.heatmap, opts...); err != nil {
			return err
		}
		log.Infof("wrote %s", c.heatmap)
	}

	return nil
}

func parseBlock(s string) ([4]int, error) {
	var b [4]int
	parts := strings.Split(s, ",")
	if len(parts) != len(b) {
		return b, fmt.Errorf("%w: -block wants top,left,bottom,right, got %q", errUsage, s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return b, fmt.Errorf("%w: -block: %v", errUsage, err)
		}
		b[i] = v
	}

	return b, nil
}
